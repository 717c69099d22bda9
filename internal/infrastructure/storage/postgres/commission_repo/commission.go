// Package commission_repo provides the PostgreSQL commission repository.
package commission_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/domain"
	"orcado/internal/domain/commission"
	"orcado/internal/infrastructure/storage/postgres"
)

const commissionTable = "reg_commissions"

var _ commission.Repository = (*CommissionRepo)(nil)

// CommissionRepo implements commission.Repository.
type CommissionRepo struct {
	tm         *postgres.TxManager
	selectCols []string
}

// NewCommissionRepo creates a new commission repository.
func NewCommissionRepo(tm *postgres.TxManager) *CommissionRepo {
	return &CommissionRepo{
		tm:         tm,
		selectCols: postgres.ExtractDBColumns[commission.Commission](),
	}
}

func (r *CommissionRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *CommissionRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(commissionTable)
}

// Create inserts a new commission record.
func (r *CommissionRepo) Create(ctx context.Context, c *commission.Commission) error {
	data := postgres.StructToMap(c)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(commissionTable).
		SetMap(filteredData).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert commission: %w", err)
	}
	return nil
}

// GetByID retrieves a commission by ID.
func (r *CommissionRepo) GetByID(ctx context.Context, commissionID id.ID) (*commission.Commission, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": commissionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c commission.Commission
	if err := pgxscan.Get(ctx, r.tm.GetQuerier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("commission", commissionID.String())
		}
		return nil, fmt.Errorf("get commission: %w", err)
	}
	return &c, nil
}

// GetByBudget retrieves the commission recorded for a budget.
func (r *CommissionRepo) GetByBudget(ctx context.Context, budgetID id.ID) (*commission.Commission, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"budget_id": budgetID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c commission.Commission
	if err := pgxscan.Get(ctx, r.tm.GetQuerier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("commission", budgetID.String())
		}
		return nil, fmt.Errorf("get commission by budget: %w", err)
	}
	return &c, nil
}

// Update modifies a commission with optimistic locking.
func (r *CommissionRepo) Update(ctx context.Context, c *commission.Commission) error {
	data := postgres.StructToMap(c)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("commission has no 'version' field or it is not an int")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "version" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.builder().
		Update(commissionTable).
		SetMap(filteredData).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": c.ID}).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("commission", c.ID)
	}
	return nil
}

// List retrieves commissions with filtering.
func (r *CommissionRepo) List(ctx context.Context, filter commission.ListFilter) (domain.ListResult[*commission.Commission], error) {
	result := domain.ListResult[*commission.Commission]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if filter.SellerID != nil {
		q = q.Where(squirrel.Eq{"seller_id": *filter.SellerID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *filter.DateTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"budget_number": pattern},
			squirrel.ILike{"seller_name": pattern},
		})
	}

	countSQL, countArgs, err := r.builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.tm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	q = q.OrderBy("created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select: %w", err)
	}
	return result, nil
}

// Summarize aggregates counts and amounts grouped by status, optionally
// limited to one seller.
func (r *CommissionRepo) Summarize(ctx context.Context, sellerID *id.ID) (commission.Summary, error) {
	q := r.builder().
		Select(
			"COUNT(*) AS total_count",
			"COALESCE(SUM(amount), 0) AS total_amount",
			"COUNT(*) FILTER (WHERE status = 'PENDING') AS pending_count",
			"COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0) AS pending_amount",
			"COUNT(*) FILTER (WHERE status = 'CALCULATED') AS calculated_count",
			"COALESCE(SUM(amount) FILTER (WHERE status = 'CALCULATED'), 0) AS calculated_amount",
			"COUNT(*) FILTER (WHERE status = 'PAID') AS paid_count",
			"COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0) AS paid_amount",
		).
		From(commissionTable)

	if sellerID != nil {
		q = q.Where(squirrel.Eq{"seller_id": *sellerID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return commission.Summary{}, fmt.Errorf("build query: %w", err)
	}

	var s commission.Summary
	row := r.tm.GetQuerier(ctx).QueryRow(ctx, sql, args...)
	if err := row.Scan(
		&s.TotalCount, &s.TotalAmount,
		&s.PendingCount, &s.PendingAmount,
		&s.CalculatedCount, &s.CalculatedAmount,
		&s.PaidCount, &s.PaidAmount,
	); err != nil {
		return commission.Summary{}, fmt.Errorf("summarize commissions: %w", err)
	}
	return s, nil
}
