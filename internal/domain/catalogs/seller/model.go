// Package seller provides the Seller catalog: the sales people who own
// budgets and earn commission on approved ones.
package seller

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"

	"orcado/internal/core/apperror"
	"orcado/internal/core/entity"
	"orcado/internal/core/types"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Seller represents a sales person.
type Seller struct {
	entity.Catalog

	// Phone is the contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the contact email
	Email *string `db:"email" json:"email,omitempty"`

	// CommissionPercentage is the seller's cut of an approved budget's
	// total, in percent
	CommissionPercentage decimal.Decimal `db:"commission_percentage" json:"commissionPercentage"`
}

// New creates a Seller with required fields.
func New(code, name string, commissionPct decimal.Decimal) *Seller {
	return &Seller{
		Catalog:              entity.NewCatalog(code, name),
		CommissionPercentage: commissionPct,
	}
}

// Validate implements entity.Validatable.
func (s *Seller) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.CommissionPercentage.IsNegative() || s.CommissionPercentage.GreaterThan(types.Hundred) {
		return apperror.NewValidation("commission percentage must be between 0 and 100").
			WithDetail("field", "commissionPercentage")
	}

	if s.Email != nil && *s.Email != "" && !emailRE.MatchString(*s.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}
