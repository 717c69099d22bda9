package client

import (
	"context"
	"fmt"
	"time"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/core/tx"
	"orcado/internal/domain"
	"orcado/pkg/numerator"
)

// Service provides business logic for the Client catalog.
// Composes domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Client]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a Client service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)
	base.Hooks().On(domain.BeforeUpdate, svc.checkDocumentUnique)

	return svc
}

// prepareForCreate generates the code and checks document uniqueness.
func (s *Service) prepareForCreate(ctx context.Context, c *Client) error {
	if c.Code == "" {
		cfg := numerator.DefaultConfig("CLI")
		cfg.IncludeYear = false
		cfg.ResetPeriod = "never"
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}
	return s.checkDocumentUnique(ctx, c)
}

func (s *Service) checkDocumentUnique(ctx context.Context, c *Client) error {
	if c.Document == nil || *c.Document == "" {
		return nil
	}

	existing, err := s.repo.FindByDocument(ctx, *c.Document)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != c.ID {
		return apperror.NewConflict("client with this document already exists").
			WithDetail("document", *c.Document)
	}
	return nil
}

// FindByDocument retrieves a client by tax ID.
func (s *Service) FindByDocument(ctx context.Context, document string) (*Client, error) {
	return s.repo.FindByDocument(ctx, document)
}

// DisplayName resolves a client's name for denormalization onto
// documents. Satisfies the budget service's client directory.
func (s *Service) DisplayName(ctx context.Context, clientID id.ID) (string, error) {
	c, err := s.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// Count returns the number of active clients.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
