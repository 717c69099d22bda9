package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"orcado/internal/domain/catalogs/priceitem"
	"orcado/internal/infrastructure/storage/postgres"
)

const priceItemTable = "cat_price_items"

var _ priceitem.Repository = (*PriceItemRepo)(nil)

// PriceItemRepo implements priceitem.Repository.
type PriceItemRepo struct {
	*BaseCatalogRepo[*priceitem.PriceItem]
}

// NewPriceItemRepo creates a new price item repository.
func NewPriceItemRepo(tm *postgres.TxManager) *PriceItemRepo {
	return &PriceItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			tm,
			priceItemTable,
			postgres.ExtractDBColumns[priceitem.PriceItem](),
			func() *priceitem.PriceItem { return &priceitem.PriceItem{} },
		),
	}
}

// ListActive returns every non-deleted item ordered by name.
func (r *PriceItemRepo) ListActive(ctx context.Context) ([]*priceitem.PriceItem, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*priceitem.PriceItem
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}
	return items, nil
}

// ListCategories returns the distinct non-empty categories of active items.
func (r *PriceItemRepo) ListCategories(ctx context.Context) ([]string, error) {
	sql, args, err := r.Builder().
		Select("DISTINCT category").
		From(priceItemTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.NotEq{"category": ""}).
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
