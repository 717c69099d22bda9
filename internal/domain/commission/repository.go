package commission

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"orcado/internal/core/id"
	"orcado/internal/domain"
)

// Summary aggregates commissions by payment state.
type Summary struct {
	TotalCount       int64           `json:"totalCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	PendingCount     int64           `json:"pendingCount"`
	PendingAmount    decimal.Decimal `json:"pendingAmount"`
	CalculatedCount  int64           `json:"calculatedCount"`
	CalculatedAmount decimal.Decimal `json:"calculatedAmount"`
	PaidCount        int64           `json:"paidCount"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
}

// Repository defines persistence operations for commissions.
type Repository interface {
	Create(ctx context.Context, c *Commission) error
	GetByID(ctx context.Context, commissionID id.ID) (*Commission, error)
	GetByBudget(ctx context.Context, budgetID id.ID) (*Commission, error)
	Update(ctx context.Context, c *Commission) error
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Commission], error)
	Summarize(ctx context.Context, sellerID *id.ID) (Summary, error)
}

// ListFilter for filtering commissions.
type ListFilter struct {
	domain.ListFilter

	SellerID *id.ID
	Status   *Status
	DateFrom *time.Time
	DateTo   *time.Time
}
