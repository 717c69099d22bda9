package seller

import (
	"orcado/internal/domain"
)

// Repository defines the interface for Seller persistence.
type Repository interface {
	domain.CatalogRepository[*Seller]
}
