package seller

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"orcado/internal/core/id"
	"orcado/internal/core/tx"
	"orcado/internal/domain"
	"orcado/pkg/numerator"
)

// Service provides business logic for the Seller catalog.
type Service struct {
	*domain.CatalogService[*Seller]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a Seller service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Seller]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "seller",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().On(domain.BeforeCreate, svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, sel *Seller) error {
	if sel.Code == "" {
		cfg := numerator.DefaultConfig("VEN")
		cfg.IncludeYear = false
		cfg.ResetPeriod = "never"
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		sel.Code = code
	}
	return nil
}

// DisplayName resolves a seller's name for denormalization onto
// documents. Satisfies the budget service's seller directory.
func (s *Service) DisplayName(ctx context.Context, sellerID id.ID) (string, error) {
	sel, err := s.GetByID(ctx, sellerID)
	if err != nil {
		return "", err
	}
	return sel.Name, nil
}

// CommissionRate returns the seller's commission percentage. The
// commission service uses it when an approved budget is recorded.
func (s *Service) CommissionRate(ctx context.Context, sellerID id.ID) (decimal.Decimal, error) {
	sel, err := s.GetByID(ctx, sellerID)
	if err != nil {
		return decimal.Zero, err
	}
	return sel.CommissionPercentage, nil
}
