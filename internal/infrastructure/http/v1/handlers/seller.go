package handlers

import (
	"orcado/internal/domain/catalogs/seller"
	"orcado/internal/infrastructure/http/v1/dto"
)

// SellerHandler serves the /sellers routes.
type SellerHandler = CatalogHandler[*seller.Seller, dto.SellerRequest]

// NewSellerHandler wires the generic catalog handler for sellers.
func NewSellerHandler(base *BaseHandler, service *seller.Service) *SellerHandler {
	cfg := CatalogHandlerConfig[*seller.Seller, dto.SellerRequest]{
		Service:    service.CatalogService,
		EntityName: "seller",
		NewEntity: func(req dto.SellerRequest) *seller.Seller {
			s := seller.New("", req.Name, req.CommissionPercentage.Decimal)
			req.Apply(s)
			return s
		},
		ApplyDTO: func(req dto.SellerRequest, existing *seller.Seller) *seller.Seller {
			req.Apply(existing)
			if req.Version > 0 {
				existing.Version = req.Version
			}
			return existing
		},
		ToDTO: func(s *seller.Seller) any {
			return dto.FromSeller(s)
		},
	}
	return NewCatalogHandler(base, cfg)
}
