package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/core/id"
	"orcado/internal/core/types"
	"orcado/internal/domain/budget"
)

func TestBudgetRequest_ToBudget(t *testing.T) {
	clientID := id.New()
	sellerID := id.New().String()

	req := BudgetRequest{
		ClientID:   clientID.String(),
		SellerID:   &sellerID,
		BudgetType: "TROCA",
		Items: []BudgetLineRequest{
			{ItemName: "Lona frontlight", Quantity: types.NFloat(2)},
			{ItemName: "Instalação", Quantity: types.NFloat(1)},
		},
	}

	b, err := req.ToBudget()
	require.NoError(t, err)

	assert.Equal(t, clientID, b.ClientID)
	require.NotNil(t, b.SellerID)
	assert.Equal(t, sellerID, b.SellerID.String())
	assert.Equal(t, budget.TypeTroca, b.Type)
	require.Len(t, b.Lines, 2)
	assert.Equal(t, 1, b.Lines[0].LineNo)
	assert.Equal(t, 2, b.Lines[1].LineNo)
}

func TestBudgetRequest_ToBudget_InvalidClientID(t *testing.T) {
	req := BudgetRequest{ClientID: "not-a-uuid", BudgetType: "TROCA"}

	_, err := req.ToBudget()
	assert.Error(t, err)
}

func TestBudgetRequest_ToBudget_InvalidItemID(t *testing.T) {
	req := BudgetRequest{
		ClientID:   id.New().String(),
		BudgetType: "TROCA",
		Items: []BudgetLineRequest{
			{ItemID: "garbage"},
		},
	}

	_, err := req.ToBudget()
	assert.Error(t, err)
}

// Unparseable numeric input decodes to zero rather than failing the request.
func TestBudgetLineRequest_LenientNumerics(t *testing.T) {
	payload := `{
		"item_name": "Adesivo",
		"quantity": "abc",
		"unit_price": null,
		"length": "2.5"
	}`

	var req BudgetLineRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.True(t, req.Quantity.IsZero())
	assert.True(t, req.UnitPrice.IsZero())
	assert.Equal(t, "2.5", req.Length.String())
}

// The wire `subtotal` of a line is its final price, and zero-valued
// dimensional fields serialize as null.
func TestFromLine_WireFormat(t *testing.T) {
	line := budget.NewLine()
	line.ItemName = "Lona"
	line.Quantity = decimal.NewFromInt(2)
	line.UnitPrice = decimal.NewFromFloat(38.50)
	line.Length = decimal.NewFromFloat(3)
	line.Height = decimal.NewFromFloat(2)
	line.AreaOrVolume = decimal.NewFromFloat(6)
	line.Subtotal = decimal.NewFromFloat(462)
	line.FinalPrice = decimal.NewFromFloat(415.80)

	raw, err := json.Marshal(FromLine(line))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.InDelta(t, 415.80, m["subtotal"], 0.001)
	assert.InDelta(t, 6, m["area_m2"], 0.001)
	assert.InDelta(t, 3, m["length"], 0.001)

	// Unused dimensions and options are null, quantity stays numeric
	assert.Nil(t, m["width"])
	assert.Nil(t, m["canvas_color"])
	assert.Nil(t, m["print_percentage"])
	assert.Nil(t, m["item_discount_percentage"])
	assert.InDelta(t, 2, m["quantity"], 0.001)
}

func TestFromBudget(t *testing.T) {
	b := budget.New(id.New(), budget.TypePlotagemAdesivo)
	b.Number = "ORC-2026-00042"
	b.ClientName = "Transportadora Rodalog Ltda"
	b.Subtotal = decimal.NewFromFloat(1000)
	b.Total = decimal.NewFromFloat(900)
	b.AddLine(budget.NewLine())

	resp := FromBudget(b)

	assert.Equal(t, "ORC-2026-00042", resp.Number)
	assert.Equal(t, "PLOTAGEM ADESIVO", resp.BudgetType)
	assert.Equal(t, "DRAFT", resp.Status)
	assert.Nil(t, resp.SellerID)
	assert.Len(t, resp.Items, 1)
}
