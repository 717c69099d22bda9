package canvascolor

import (
	"context"
	"fmt"
	"time"

	"orcado/internal/core/tx"
	"orcado/internal/domain"
	"orcado/pkg/numerator"
)

// Service provides business logic for the CanvasColor catalog.
type Service struct {
	*domain.CatalogService[*CanvasColor]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a CanvasColor service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*CanvasColor]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "canvas color",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, c *CanvasColor) error {
	if c.Code == "" {
		cfg := numerator.DefaultConfig("COR")
		cfg.IncludeYear = false
		cfg.ResetPeriod = "never"
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}
	return nil
}
