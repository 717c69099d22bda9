package statistics

import (
	"context"
	"time"
)

// Repository reads the aggregate queries backing the dashboard.
type Repository interface {
	// BudgetStatusCounts counts non-deleted budgets per status.
	BudgetStatusCounts(ctx context.Context) (StatusCounts, error)

	// ClientCount counts active clients.
	ClientCount(ctx context.Context) (int64, error)

	// ApprovalsInPeriod returns the count and summed total of budgets
	// approved within [from, to).
	ApprovalsInPeriod(ctx context.Context, from, to time.Time) (MonthlyApprovals, error)
}
