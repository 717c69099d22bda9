package entity

import (
	"context"
	"time"

	"orcado/internal/core/apperror"
)

// Document is the base type for business transactions.
// Example: Budget.
type Document struct {
	BaseEntity

	// Number is the document number (auto-generated, unique within type+year)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// CreatedBy is the username of the author
	CreatedBy string `db:"created_by" json:"createdBy,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument() Document {
	return Document{
		BaseEntity: NewBaseEntity(),
		Date:       time.Now().UTC(),
	}
}

// Validate implements Validatable.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}
