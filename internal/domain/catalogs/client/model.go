// Package client provides the Client catalog: the companies and people
// budgets are quoted for.
package client

import (
	"context"
	"regexp"

	"orcado/internal/core/apperror"
	"orcado/internal/core/entity"
)

// Pre-compiled regex patterns for validation
var (
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
	whitespaceRE = regexp.MustCompile(`[\s.\-/]`)
)

// Client represents a customer the shop quotes work for.
type Client struct {
	entity.Catalog

	// Document is the Brazilian tax ID: CPF (11 digits) or CNPJ (14 digits)
	Document *string `db:"document" json:"document,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Address is the free-form street address
	Address *string `db:"address" json:"address,omitempty"`

	// City and State locate the client
	City  *string `db:"city" json:"city,omitempty"`
	State *string `db:"state" json:"state,omitempty"`

	// ContactPerson is the primary contact name
	ContactPerson *string `db:"contact_person" json:"contactPerson,omitempty"`

	// Comment is a free-form note
	Comment *string `db:"comment" json:"comment,omitempty"`
}

// New creates a Client with required fields.
func New(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Document != nil && *c.Document != "" {
		if err := validateDocument(*c.Document); err != nil {
			return err
		}
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

// validateDocument accepts CPF (11 digits) or CNPJ (14 digits), with or
// without the usual punctuation.
func validateDocument(doc string) error {
	cleaned := whitespaceRE.ReplaceAllString(doc, "")

	if !digitsOnlyRE.MatchString(cleaned) {
		return apperror.NewValidation("document must contain only digits").
			WithDetail("field", "document")
	}
	if len(cleaned) != 11 && len(cleaned) != 14 {
		return apperror.NewValidation("document must be a CPF (11 digits) or CNPJ (14 digits)").
			WithDetail("field", "document")
	}
	return nil
}
