package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/domain/catalogs/canvascolor"
)

func TestFromCanvasColor_WireFormat(t *testing.T) {
	hex := "#1A2B3C"
	cc := canvascolor.New("CC-001", "Azul")
	cc.HexValue = &hex

	raw, err := json.Marshal(FromCanvasColor(cc))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))

	assert.Equal(t, "Azul", wire["name"])
	assert.Equal(t, hex, wire["hex_code"])
	assert.NotContains(t, wire, "hex_value")
	assert.NotContains(t, wire, "hexValue")
}

func TestCanvasColorRequest_Apply(t *testing.T) {
	var req CanvasColorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Preto","hex_code":"#000000"}`), &req))

	cc := canvascolor.New("", req.Name)
	req.Apply(cc)

	assert.Equal(t, "Preto", cc.Name)
	require.NotNil(t, cc.HexValue)
	assert.Equal(t, "#000000", *cc.HexValue)
}
