package dto

import (
	"time"

	"orcado/internal/core/types"
	"orcado/internal/domain/commission"
)

// CommissionResponse is the wire form of a seller commission.
type CommissionResponse struct {
	ID           string        `json:"id"`
	BudgetID     string        `json:"budget_id"`
	BudgetNumber string        `json:"budget_number"`
	SellerID     string        `json:"seller_id"`
	SellerName   string        `json:"seller_name"`
	BudgetTotal  types.Numeric `json:"budget_total"`
	Percentage   types.Numeric `json:"percentage"`
	Amount       types.Numeric `json:"amount"`
	Status       string        `json:"status"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
	Version      int           `json:"version"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func FromCommission(c *commission.Commission) CommissionResponse {
	return CommissionResponse{
		ID:           c.ID.String(),
		BudgetID:     c.BudgetID.String(),
		BudgetNumber: c.BudgetNumber,
		SellerID:     c.SellerID.String(),
		SellerName:   c.SellerName,
		BudgetTotal:  types.N(c.BudgetTotal),
		Percentage:   types.N(c.Percentage),
		Amount:       types.N(c.Amount),
		Status:       string(c.Status),
		PaidAt:       c.PaidAt,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromCommissions(items []*commission.Commission) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCommission(c))
	}
	return out
}

// CommissionSummaryResponse aggregates commissions by status.
type CommissionSummaryResponse struct {
	TotalCount       int64         `json:"total_count"`
	TotalAmount      types.Numeric `json:"total_amount"`
	PendingCount     int64         `json:"pending_count"`
	PendingAmount    types.Numeric `json:"pending_amount"`
	CalculatedCount  int64         `json:"calculated_count"`
	CalculatedAmount types.Numeric `json:"calculated_amount"`
	PaidCount        int64         `json:"paid_count"`
	PaidAmount       types.Numeric `json:"paid_amount"`
}

func FromCommissionSummary(s commission.Summary) CommissionSummaryResponse {
	return CommissionSummaryResponse{
		TotalCount:       s.TotalCount,
		TotalAmount:      types.N(s.TotalAmount),
		PendingCount:     s.PendingCount,
		PendingAmount:    types.N(s.PendingAmount),
		CalculatedCount:  s.CalculatedCount,
		CalculatedAmount: types.N(s.CalculatedAmount),
		PaidCount:        s.PaidCount,
		PaidAmount:       types.N(s.PaidAmount),
	}
}
