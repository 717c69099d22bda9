package canvascolor

import (
	"orcado/internal/domain"
)

// Repository defines the interface for CanvasColor persistence.
type Repository interface {
	domain.CatalogRepository[*CanvasColor]
}
