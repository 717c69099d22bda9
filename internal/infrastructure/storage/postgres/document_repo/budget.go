package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"orcado/internal/core/id"
	"orcado/internal/domain"
	"orcado/internal/domain/budget"
	"orcado/internal/infrastructure/storage/postgres"
)

const (
	budgetsTable     = "doc_budgets"
	budgetLinesTable = "doc_budget_lines"
)

var _ budget.Repository = (*BudgetRepo)(nil)

// BudgetRepo implements budget.Repository.
type BudgetRepo struct {
	*BaseDocumentRepo[*budget.Budget]
}

// NewBudgetRepo creates a new budget repository.
func NewBudgetRepo(tm *postgres.TxManager) *BudgetRepo {
	return &BudgetRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			tm,
			budgetsTable,
			postgres.ExtractDBColumns[budget.Budget](),
			func() *budget.Budget { return &budget.Budget{} },
		),
	}
}

// GetLines retrieves lines for a budget ordered by line number.
func (r *BudgetRepo) GetLines(ctx context.Context, budgetID id.ID) ([]budget.Line, error) {
	sql, args, err := r.Builder().
		Select(
			"line_id", "line_no", "item_id", "item_name", "unit_price",
			"quantity", "length", "height", "width", "area_or_volume",
			"canvas_color", "print_percentage", "item_discount_percentage",
			"subtotal", "final_price",
		).
		From(budgetLinesTable).
		Where(squirrel.Eq{"budget_id": budgetID}).
		OrderBy("line_no").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []budget.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	return lines, nil
}

// SaveLines replaces the lines of a budget (delete existing + insert new).
func (r *BudgetRepo) SaveLines(ctx context.Context, budgetID id.ID, lines []budget.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + budgetLinesTable + " WHERE budget_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, budgetID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(budgetLinesTable).
		Columns(
			"line_id", "budget_id", "line_no", "item_id", "item_name", "unit_price",
			"quantity", "length", "height", "width", "area_or_volume",
			"canvas_color", "print_percentage", "item_discount_percentage",
			"subtotal", "final_price",
		)

	for _, line := range lines {
		q = q.Values(
			line.LineID, budgetID, line.LineNo, line.ItemID, line.ItemName, line.UnitPrice,
			line.Quantity, line.Length, line.Height, line.Width, line.AreaOrVolume,
			line.CanvasColor, line.PrintPercentage, line.ItemDiscountPercentage,
			line.Subtotal, line.FinalPrice,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}
	return nil
}

// List retrieves budgets with filtering.
func (r *BudgetRepo) List(ctx context.Context, filter budget.ListFilter) (domain.ListResult[*budget.Budget], error) {
	result := domain.ListResult[*budget.Budget]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}
	if filter.ClientID != nil {
		q = q.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.SellerID != nil {
		q = q.Where(squirrel.Eq{"seller_id": *filter.SellerID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"budget_type": *filter.Type})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"client_name": pattern},
		})
	}

	countSQL, countArgs, err := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

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
