package commission

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/core/tx"
	"orcado/internal/domain"
	"orcado/internal/domain/budget"
	"orcado/pkg/logger"
)

// RateSource resolves a seller's commission percentage.
type RateSource interface {
	CommissionRate(ctx context.Context, sellerID id.ID) (decimal.Decimal, error)
}

// Service provides business operations for commissions.
type Service struct {
	repo      Repository
	rates     RateSource
	txManager tx.Manager
}

// NewService creates a commission service.
func NewService(repo Repository, rates RateSource, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		rates:     rates,
		txManager: txManager,
	}
}

// RecordApproval creates a pending commission for an approved budget.
// Registered as a budget approval hook, it runs inside the approval
// transaction. Budgets without a seller earn no commission.
func (s *Service) RecordApproval(ctx context.Context, b *budget.Budget) error {
	if b.SellerID == nil || id.IsNil(*b.SellerID) {
		return nil
	}

	rate, err := s.rates.CommissionRate(ctx, *b.SellerID)
	if err != nil {
		return fmt.Errorf("resolve commission rate: %w", err)
	}

	sellerName := ""
	if b.SellerName != nil {
		sellerName = *b.SellerName
	}

	c := New(b.ID, b.Number, *b.SellerID, sellerName, b.Total, rate)
	if err := c.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create commission: %w", err)
	}

	logger.Info(ctx, "commission recorded",
		"budgetNumber", b.Number,
		"sellerId", c.SellerID,
		"amount", c.Amount)

	return nil
}

// GetByID retrieves a commission.
func (s *Service) GetByID(ctx context.Context, commissionID id.ID) (*Commission, error) {
	return s.repo.GetByID(ctx, commissionID)
}

// GetByBudget retrieves the commission of a budget, if any.
func (s *Service) GetByBudget(ctx context.Context, budgetID id.ID) (*Commission, error) {
	return s.repo.GetByBudget(ctx, budgetID)
}

// ChangeStatus moves a commission along its payment lifecycle.
func (s *Service) ChangeStatus(ctx context.Context, commissionID id.ID, to Status) (*Commission, error) {
	var c *Commission

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.repo.GetByID(ctx, commissionID)
		if err != nil {
			return err
		}

		if err := c.ChangeStatus(to); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, c); err != nil {
			return fmt.Errorf("update commission: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "commission status changed",
		"id", c.ID,
		"status", c.Status)

	return c, nil
}

// List retrieves commissions with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Commission], error) {
	return s.repo.List(ctx, filter)
}

// Summary aggregates commissions, optionally for one seller.
func (s *Service) Summary(ctx context.Context, sellerID *id.ID) (Summary, error) {
	if sellerID != nil && id.IsNil(*sellerID) {
		return Summary{}, apperror.NewValidation("invalid seller id").
			WithDetail("field", "sellerId")
	}
	return s.repo.Summarize(ctx, sellerID)
}
