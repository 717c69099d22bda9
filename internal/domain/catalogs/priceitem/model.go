// Package priceitem provides the price table catalog: every product and
// service a budget line can reference, with its current unit price.
package priceitem

import (
	"context"

	"github.com/shopspring/decimal"

	"orcado/internal/core/apperror"
	"orcado/internal/core/entity"
)

// PriceItem is one entry of the price table.
type PriceItem struct {
	entity.Catalog

	// Unit is the pricing unit: "m²", "m³", "un", "h"
	Unit string `db:"unit" json:"unit"`

	// UnitPrice is the current price per unit. Budget lines snapshot it
	// at selection time, so edits here never reprice existing budgets.
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`

	// Category groups items for filtering ("Lonas", "Adesivos", ...)
	Category string `db:"category" json:"category,omitempty"`
}

// New creates a PriceItem with required fields.
func New(code, name, unit string, unitPrice decimal.Decimal) *PriceItem {
	return &PriceItem{
		Catalog:   entity.NewCatalog(code, name),
		Unit:      unit,
		UnitPrice: unitPrice,
	}
}

// Validate implements entity.Validatable.
func (p *PriceItem) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Unit == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}

	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price must not be negative").
			WithDetail("field", "unitPrice")
	}

	return nil
}
