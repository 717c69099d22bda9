package client

import (
	"context"

	"orcado/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.CatalogRepository[*Client]

	// FindByDocument retrieves a client by its tax ID.
	FindByDocument(ctx context.Context, document string) (*Client, error)

	// Count returns the number of active clients.
	Count(ctx context.Context) (int64, error)
}
