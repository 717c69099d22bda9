package priceitem

import (
	"context"

	"orcado/internal/domain"
)

// Repository defines the interface for PriceItem persistence.
type Repository interface {
	domain.CatalogRepository[*PriceItem]

	// ListActive returns every non-deleted item, for catalog snapshots.
	ListActive(ctx context.Context) ([]*PriceItem, error)

	// ListCategories returns the distinct categories of active items.
	ListCategories(ctx context.Context) ([]string, error)
}
