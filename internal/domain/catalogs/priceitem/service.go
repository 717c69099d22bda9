package priceitem

import (
	"context"
	"fmt"
	"time"

	"orcado/internal/core/apperror"
	"orcado/internal/core/tx"
	"orcado/internal/domain"
	"orcado/internal/domain/budget"
	"orcado/pkg/numerator"
)

// Service provides business logic for the price table.
type Service struct {
	*domain.CatalogService[*PriceItem]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a PriceItem service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*PriceItem]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "price item",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

// prepareForCreate generates the code and rejects duplicates.
func (s *Service) prepareForCreate(ctx context.Context, p *PriceItem) error {
	if p.Code == "" {
		cfg := numerator.DefaultConfig("ITM")
		cfg.IncludeYear = false
		cfg.ResetPeriod = "never"
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
		return nil
	}

	exists, err := s.repo.ExistsByCode(ctx, p.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("price item", "code", p.Code)
	}
	return nil
}

// Categories returns the distinct categories of active items.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// Snapshot loads the active price table as an immutable catalog for the
// budget pricing engine. Satisfies the budget service's catalog source.
func (s *Service) Snapshot(ctx context.Context) (*budget.Catalog, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list price items: %w", err)
	}

	entries := make([]budget.CatalogEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, budget.CatalogEntry{
			ID:        item.ID,
			Code:      item.Code,
			Name:      item.Name,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			Category:  item.Category,
		})
	}
	return budget.NewCatalog(entries), nil
}
