package handlers

import (
	"orcado/internal/domain/catalogs/client"
	"orcado/internal/infrastructure/http/v1/dto"
)

// ClientHandler serves the /clients routes.
type ClientHandler = CatalogHandler[*client.Client, dto.ClientRequest]

// NewClientHandler wires the generic catalog handler for clients.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHandler {
	cfg := CatalogHandlerConfig[*client.Client, dto.ClientRequest]{
		Service:    service.CatalogService,
		EntityName: "client",
		NewEntity: func(req dto.ClientRequest) *client.Client {
			c := client.New("", req.Name)
			req.Apply(c)
			return c
		},
		ApplyDTO: func(req dto.ClientRequest, existing *client.Client) *client.Client {
			req.Apply(existing)
			if req.Version > 0 {
				existing.Version = req.Version
			}
			return existing
		},
		ToDTO: func(c *client.Client) any {
			return dto.FromClient(c)
		},
	}
	return NewCatalogHandler(base, cfg)
}
