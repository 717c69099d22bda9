package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcado/internal/domain/catalogs/priceitem"
	"orcado/internal/infrastructure/http/v1/dto"
)

// PriceTableHandler serves the /price-table routes.
type PriceTableHandler struct {
	*CatalogHandler[*priceitem.PriceItem, dto.PriceItemRequest]
	service *priceitem.Service
}

// NewPriceTableHandler wires the generic catalog handler for price items.
func NewPriceTableHandler(base *BaseHandler, service *priceitem.Service) *PriceTableHandler {
	cfg := CatalogHandlerConfig[*priceitem.PriceItem, dto.PriceItemRequest]{
		Service:    service.CatalogService,
		EntityName: "price item",
		NewEntity: func(req dto.PriceItemRequest) *priceitem.PriceItem {
			p := priceitem.New("", req.Name, req.Unit, req.UnitPrice.Decimal)
			req.Apply(p)
			return p
		},
		ApplyDTO: func(req dto.PriceItemRequest, existing *priceitem.PriceItem) *priceitem.PriceItem {
			req.Apply(existing)
			if req.Version > 0 {
				existing.Version = req.Version
			}
			return existing
		},
		ToDTO: func(p *priceitem.PriceItem) any {
			return dto.FromPriceItem(p)
		},
	}
	return &PriceTableHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// Categories handles GET /price-table/categories.
func (h *PriceTableHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}
