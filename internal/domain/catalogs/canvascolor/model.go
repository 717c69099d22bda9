// Package canvascolor provides the canvas color catalog used by budget
// lines as a descriptive attribute.
package canvascolor

import (
	"context"
	"regexp"

	"orcado/internal/core/apperror"
	"orcado/internal/core/entity"
)

var hexRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CanvasColor is a selectable canvas color.
type CanvasColor struct {
	entity.Catalog

	// HexValue is the display color, "#RRGGBB". Optional.
	HexValue *string `db:"hex_value" json:"hexValue,omitempty"`
}

// New creates a CanvasColor.
func New(code, name string) *CanvasColor {
	return &CanvasColor{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (c *CanvasColor) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.HexValue != nil && *c.HexValue != "" && !hexRE.MatchString(*c.HexValue) {
		return apperror.NewValidation("hex value must match #RRGGBB").
			WithDetail("field", "hexValue")
	}

	return nil
}
