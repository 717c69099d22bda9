package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"orcado/internal/core/types"
)

// Service assembles the dashboard.
type Service struct {
	repo Repository

	// now is swappable for tests
	now func() time.Time
}

// NewService creates a statistics service.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Dashboard computes the current dashboard snapshot. The approval rate
// is approved budgets over all budgets; zero budgets yields a zero rate
// rather than a division error.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	counts, err := s.repo.BudgetStatusCounts(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("budget counts: %w", err)
	}

	clients, err := s.repo.ClientCount(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("client count: %w", err)
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	monthly, err := s.repo.ApprovalsInPeriod(ctx, monthStart, monthEnd)
	if err != nil {
		return Dashboard{}, fmt.Errorf("monthly approvals: %w", err)
	}

	rate := decimal.Zero
	if total := counts.Total(); total > 0 {
		rate = decimal.NewFromInt(counts.Approved).
			Mul(types.Hundred).
			Div(decimal.NewFromInt(total)).
			Round(1)
	}

	return Dashboard{
		TotalBudgets:      counts.Total(),
		DraftBudgets:      counts.Draft,
		SentBudgets:       counts.Sent,
		ApprovedBudgets:   counts.Approved,
		RejectedBudgets:   counts.Rejected,
		TotalClients:      clients,
		MonthlyRevenue:    monthly.Revenue,
		ApprovedThisMonth: monthly.Count,
		ApprovalRate:      rate,
		CurrentMonth:      monthStart.Format("2006-01"),
		LastUpdated:       now,
	}, nil
}
