package handlers

import (
	"orcado/internal/domain/catalogs/canvascolor"
	"orcado/internal/infrastructure/http/v1/dto"
)

// CanvasColorHandler serves the /canvas-colors routes.
type CanvasColorHandler = CatalogHandler[*canvascolor.CanvasColor, dto.CanvasColorRequest]

// NewCanvasColorHandler wires the generic catalog handler for canvas colors.
func NewCanvasColorHandler(base *BaseHandler, service *canvascolor.Service) *CanvasColorHandler {
	cfg := CatalogHandlerConfig[*canvascolor.CanvasColor, dto.CanvasColorRequest]{
		Service:    service.CatalogService,
		EntityName: "canvas color",
		NewEntity: func(req dto.CanvasColorRequest) *canvascolor.CanvasColor {
			cc := canvascolor.New("", req.Name)
			req.Apply(cc)
			return cc
		},
		ApplyDTO: func(req dto.CanvasColorRequest, existing *canvascolor.CanvasColor) *canvascolor.CanvasColor {
			req.Apply(existing)
			if req.Version > 0 {
				existing.Version = req.Version
			}
			return existing
		},
		ToDTO: func(cc *canvascolor.CanvasColor) any {
			return dto.FromCanvasColor(cc)
		},
	}
	return NewCatalogHandler(base, cfg)
}
