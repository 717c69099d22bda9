package catalog_repo

import (
	"orcado/internal/domain/catalogs/canvascolor"
	"orcado/internal/infrastructure/storage/postgres"
)

const canvasColorTable = "cat_canvas_colors"

var _ canvascolor.Repository = (*CanvasColorRepo)(nil)

// CanvasColorRepo implements canvascolor.Repository.
type CanvasColorRepo struct {
	*BaseCatalogRepo[*canvascolor.CanvasColor]
}

// NewCanvasColorRepo creates a new canvas color repository.
func NewCanvasColorRepo(tm *postgres.TxManager) *CanvasColorRepo {
	return &CanvasColorRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			tm,
			canvasColorTable,
			postgres.ExtractDBColumns[canvascolor.CanvasColor](),
			func() *canvascolor.CanvasColor { return &canvascolor.CanvasColor{} },
		),
	}
}
