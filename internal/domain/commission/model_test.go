package commission

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/core/id"
)

func TestNew_DerivesAmount(t *testing.T) {
	c := New(id.New(), "ORC-2026-00001", id.New(), "Maria",
		decimal.NewFromInt(1000), decimal.NewFromInt(5))

	assert.Equal(t, StatusPending, c.Status)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(50)), "amount %s", c.Amount)
	assert.NoError(t, c.Validate(context.Background()))
}

func TestChangeStatus(t *testing.T) {
	c := New(id.New(), "ORC-2026-00001", id.New(), "Maria",
		decimal.NewFromInt(1000), decimal.NewFromInt(5))

	// Forward only.
	require.Error(t, c.ChangeStatus(StatusPaid))
	require.NoError(t, c.ChangeStatus(StatusCalculated))
	require.Error(t, c.ChangeStatus(StatusPending))
	require.NoError(t, c.ChangeStatus(StatusPaid))
	require.NotNil(t, c.PaidAt)

	// Paid is final.
	require.Error(t, c.ChangeStatus(StatusCalculated))
}
