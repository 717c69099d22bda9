package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
)

func validBudget() *Budget {
	b := New(id.New(), TypePlotagemAdesivo)
	line := NewLine()
	line.ItemID = id.New()
	line.ItemName = "Lona frontlight"
	line.UnitPrice = d("100")
	line.Quantity = d("2")
	line.Length = d("1.5")
	line.Height = d("2")
	b.AddLine(line)
	return b
}

func TestBudget_New(t *testing.T) {
	b := New(id.New(), TypeTroca)
	assert.Equal(t, StatusDraft, b.Status)
	assert.Equal(t, 30, b.ValidityDays)
	assert.Empty(t, b.Lines)
	assert.False(t, id.IsNil(b.ID))
}

func TestBudget_AddLineRecalculates(t *testing.T) {
	b := validBudget()

	require.Len(t, b.Lines, 1)
	l := b.Lines[0]
	assert.Equal(t, 1, l.LineNo)
	assert.True(t, l.AreaOrVolume.Equal(d("3")), "area %s", l.AreaOrVolume)
	assert.True(t, l.Subtotal.Equal(d("600")), "line subtotal %s", l.Subtotal)
	assert.True(t, b.Total.Equal(d("600")), "total %s", b.Total)
}

func TestBudget_RemoveLineRenumbers(t *testing.T) {
	b := validBudget()
	second := NewLine()
	second.ItemID = id.New()
	second.UnitPrice = d("50")
	second.Quantity = d("3")
	b.AddLine(second)
	require.Len(t, b.Lines, 2)

	b.RemoveLine(0)

	require.Len(t, b.Lines, 1)
	assert.Equal(t, 1, b.Lines[0].LineNo)
	assert.True(t, b.Total.Equal(d("150")), "total %s", b.Total)

	// Out-of-range indexes are ignored.
	b.RemoveLine(-1)
	b.RemoveLine(5)
	assert.Len(t, b.Lines, 1)
}

func TestBudget_RecalculateWithHeaderDiscount(t *testing.T) {
	b := validBudget()
	b.Lines[0].PrintPercentage = d("50")
	b.Lines[0].ItemDiscountPercentage = d("10")
	second := NewLine()
	second.ItemID = id.New()
	second.UnitPrice = d("100")
	second.Quantity = decimal.NewFromInt(1)
	b.AddLine(second)
	b.DiscountPercentage = d("10")

	b.Recalculate()

	// 600 * 50% = 300, minus 10% = 270; plus 100; minus 10% header = 333.
	assert.True(t, b.Subtotal.Equal(d("370")), "subtotal %s", b.Subtotal)
	assert.True(t, b.DiscountAmount.Equal(d("37")), "discount %s", b.DiscountAmount)
	assert.True(t, b.Total.Equal(d("333")), "total %s", b.Total)
}

func TestBudget_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Budget)
		wantErr bool
	}{
		{"valid", func(b *Budget) {}, false},
		{"missing client", func(b *Budget) { b.ClientID = id.Nil() }, true},
		{"unknown type", func(b *Budget) { b.Type = "PINTURA" }, true},
		{"unknown status", func(b *Budget) { b.Status = "ARCHIVED" }, true},
		{"discount above 100", func(b *Budget) { b.DiscountPercentage = d("101") }, true},
		{"negative discount", func(b *Budget) { b.DiscountPercentage = d("-1") }, true},
		{"negative travel distance", func(b *Budget) { b.TravelDistanceKm = d("-5") }, true},
		{"zero quantity line", func(b *Budget) { b.Lines[0].Quantity = decimal.Zero }, true},
		{"negative dimension", func(b *Budget) { b.Lines[0].Length = d("-1") }, true},
		{"print percentage above 100", func(b *Budget) { b.Lines[0].PrintPercentage = d("150") }, true},
		{"line discount above 100", func(b *Budget) { b.Lines[0].ItemDiscountPercentage = d("120") }, true},
		{"unselected line is fine for drafts", func(b *Budget) { b.Lines[0].ItemID = id.Nil() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBudget()
			tt.mutate(b)
			err := b.Validate(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudget_ValidateForSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validBudget().ValidateForSubmit(ctx))
	})

	t.Run("no lines", func(t *testing.T) {
		b := New(id.New(), TypeTroca)
		assert.Error(t, b.ValidateForSubmit(ctx))
	})

	t.Run("line without item", func(t *testing.T) {
		b := validBudget()
		unselected := NewLine()
		b.AddLine(unselected)
		err := b.ValidateForSubmit(ctx)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, 2, appErr.Details["lineNo"])
	})
}

func TestBudget_ChangeStatus(t *testing.T) {
	tests := []struct {
		from, to Status
		wantErr  bool
	}{
		{StatusDraft, StatusSent, false},
		{StatusSent, StatusApproved, false},
		{StatusSent, StatusRejected, false},
		{StatusRejected, StatusSent, false},
		{StatusDraft, StatusApproved, true},
		{StatusDraft, StatusRejected, true},
		{StatusApproved, StatusSent, true},
		{StatusApproved, StatusRejected, true},
		{StatusRejected, StatusApproved, true},
		{StatusSent, StatusDraft, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := validBudget()
			b.Status = tt.from
			err := b.ChangeStatus(tt.to)
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := apperror.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperror.CodeInvalidStatusChange, appErr.Code)
				assert.Equal(t, tt.from, b.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, b.Status)
			}
		})
	}

	t.Run("unknown target status", func(t *testing.T) {
		b := validBudget()
		err := b.ChangeStatus("ARCHIVED")
		require.Error(t, err)
		appErr, _ := apperror.AsAppError(err)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})
}

func TestTypeAndStatusValidation(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, IsValidType(typ), "type %s", typ)
	}
	assert.False(t, IsValidType(""))
	assert.False(t, IsValidType("remoção"))

	for _, s := range []Status{StatusDraft, StatusSent, StatusApproved, StatusRejected} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("draft"))
}
