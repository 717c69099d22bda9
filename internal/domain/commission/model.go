// Package commission tracks seller commissions earned on approved
// budgets.
package commission

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"orcado/internal/core/apperror"
	"orcado/internal/core/entity"
	"orcado/internal/core/id"
	"orcado/internal/core/types"
)

// Status is the payment state of a commission.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusCalculated Status = "CALCULATED"
	StatusPaid       Status = "PAID"
)

// IsValidStatus reports whether s is a known status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCalculated, StatusPaid:
		return true
	}
	return false
}

// statusTransitions: a commission moves forward only. Paid is final.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusCalculated},
	StatusCalculated: {StatusPaid},
	StatusPaid:       {},
}

// CanTransition reports whether a commission may move between statuses.
func CanTransition(from, to Status) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Commission records a seller's cut of one approved budget. Budget and
// seller values are snapshots taken at approval time.
type Commission struct {
	entity.BaseEntity

	BudgetID     id.ID  `db:"budget_id" json:"budgetId"`
	BudgetNumber string `db:"budget_number" json:"budgetNumber"`

	SellerID   id.ID  `db:"seller_id" json:"sellerId"`
	SellerName string `db:"seller_name" json:"sellerName"`

	// BudgetTotal is the approved budget's total at approval time
	BudgetTotal decimal.Decimal `db:"budget_total" json:"budgetTotal"`

	// Percentage is the seller's rate at approval time
	Percentage decimal.Decimal `db:"percentage" json:"percentage"`

	// Amount = BudgetTotal × Percentage / 100
	Amount decimal.Decimal `db:"amount" json:"amount"`

	Status Status     `db:"status" json:"status"`
	PaidAt *time.Time `db:"paid_at" json:"paidAt,omitempty"`
}

// New creates a pending commission, deriving the amount.
func New(budgetID id.ID, budgetNumber string, sellerID id.ID, sellerName string, budgetTotal, percentage decimal.Decimal) *Commission {
	return &Commission{
		BaseEntity:   entity.NewBaseEntity(),
		BudgetID:     budgetID,
		BudgetNumber: budgetNumber,
		SellerID:     sellerID,
		SellerName:   sellerName,
		BudgetTotal:  budgetTotal,
		Percentage:   percentage,
		Amount:       budgetTotal.Mul(percentage).Div(types.Hundred),
		Status:       StatusPending,
	}
}

// Validate implements entity.Validatable.
func (c *Commission) Validate(ctx context.Context) error {
	if id.IsNil(c.BudgetID) {
		return apperror.NewValidation("budget is required").
			WithDetail("field", "budgetId")
	}
	if id.IsNil(c.SellerID) {
		return apperror.NewValidation("seller is required").
			WithDetail("field", "sellerId")
	}
	if !IsValidStatus(c.Status) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(c.Status))
	}
	if c.Percentage.IsNegative() || c.Percentage.GreaterThan(types.Hundred) {
		return apperror.NewValidation("percentage must be between 0 and 100").
			WithDetail("field", "percentage")
	}
	if c.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").
			WithDetail("field", "amount")
	}
	return nil
}

// ChangeStatus moves the commission forward, stamping PaidAt on payment.
func (c *Commission) ChangeStatus(to Status) error {
	if !IsValidStatus(to) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(to))
	}
	if !CanTransition(c.Status, to) {
		return apperror.NewInvalidStatusChange(string(c.Status), string(to))
	}
	c.Status = to
	if to == StatusPaid {
		now := time.Now().UTC()
		c.PaidAt = &now
	}
	c.Touch()
	return nil
}

var _ entity.Validatable = (*Commission)(nil)
