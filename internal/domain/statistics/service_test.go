package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	counts  StatusCounts
	clients int64
	monthly MonthlyApprovals

	gotFrom, gotTo time.Time
}

func (r *stubRepo) BudgetStatusCounts(ctx context.Context) (StatusCounts, error) {
	return r.counts, nil
}

func (r *stubRepo) ClientCount(ctx context.Context) (int64, error) {
	return r.clients, nil
}

func (r *stubRepo) ApprovalsInPeriod(ctx context.Context, from, to time.Time) (MonthlyApprovals, error) {
	r.gotFrom, r.gotTo = from, to
	return r.monthly, nil
}

func TestDashboard(t *testing.T) {
	repo := &stubRepo{
		counts:  StatusCounts{Draft: 3, Sent: 2, Approved: 4, Rejected: 1},
		clients: 17,
		monthly: MonthlyApprovals{Count: 2, Revenue: decimal.NewFromInt(12500)},
	}
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 30, 14, 0, 0, 0, time.UTC)
	}

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), d.TotalBudgets)
	assert.Equal(t, int64(17), d.TotalClients)
	assert.Equal(t, int64(2), d.ApprovedThisMonth)
	assert.True(t, d.MonthlyRevenue.Equal(decimal.NewFromInt(12500)))
	assert.Equal(t, "40", d.ApprovalRate.String())
	assert.Equal(t, "2026-08", d.CurrentMonth)

	// The monthly window is the calendar month, [start, nextStart).
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), repo.gotTo)
}

func TestDashboard_NoBudgets(t *testing.T) {
	svc := NewService(&stubRepo{})

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), d.TotalBudgets)
	assert.True(t, d.ApprovalRate.IsZero())
}
