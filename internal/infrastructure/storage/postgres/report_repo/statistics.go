// Package report_repo provides PostgreSQL implementations for report repositories.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"orcado/internal/domain/statistics"
	"orcado/internal/infrastructure/storage/postgres"
)

var _ statistics.Repository = (*StatisticsRepo)(nil)

// StatisticsRepo implements statistics.Repository.
type StatisticsRepo struct {
	tm *postgres.TxManager
}

// NewStatisticsRepo creates a new statistics repository.
func NewStatisticsRepo(tm *postgres.TxManager) *StatisticsRepo {
	return &StatisticsRepo{tm: tm}
}

// BudgetStatusCounts counts non-deleted budgets per status.
func (r *StatisticsRepo) BudgetStatusCounts(ctx context.Context) (statistics.StatusCounts, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'DRAFT'),
			COUNT(*) FILTER (WHERE status = 'SENT'),
			COUNT(*) FILTER (WHERE status = 'APPROVED'),
			COUNT(*) FILTER (WHERE status = 'REJECTED')
		FROM doc_budgets
		WHERE deletion_mark = false
	`

	var counts statistics.StatusCounts
	row := r.tm.GetQuerier(ctx).QueryRow(ctx, query)
	if err := row.Scan(&counts.Draft, &counts.Sent, &counts.Approved, &counts.Rejected); err != nil {
		return statistics.StatusCounts{}, fmt.Errorf("count budgets by status: %w", err)
	}
	return counts, nil
}

// ClientCount counts active clients.
func (r *StatisticsRepo) ClientCount(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM cat_clients WHERE deletion_mark = false`

	var count int64
	if err := r.tm.GetQuerier(ctx).QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}

// ApprovalsInPeriod returns the count and summed total of budgets approved
// within [from, to). Approved budgets are immutable, so updated_at is the
// approval time.
func (r *StatisticsRepo) ApprovalsInPeriod(ctx context.Context, from, to time.Time) (statistics.MonthlyApprovals, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM doc_budgets
		WHERE deletion_mark = false
		  AND status = 'APPROVED'
		  AND updated_at >= $1
		  AND updated_at < $2
	`

	var approvals statistics.MonthlyApprovals
	row := r.tm.GetQuerier(ctx).QueryRow(ctx, query, from, to)
	if err := row.Scan(&approvals.Count, &approvals.Revenue); err != nil {
		return statistics.MonthlyApprovals{}, fmt.Errorf("sum approvals in period: %w", err)
	}
	return approvals, nil
}
