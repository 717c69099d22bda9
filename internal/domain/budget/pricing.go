package budget

import (
	"github.com/shopspring/decimal"

	"orcado/internal/core/id"
	"orcado/internal/core/types"
)

// CatalogEntry is a priced product or service a budget line can reference.
// Values are copied onto the line at selection time (snapshot semantics):
// later price table edits never touch already-authored lines.
type CatalogEntry struct {
	ID        id.ID
	Code      string
	Name      string
	Unit      string
	UnitPrice decimal.Decimal
	Category  string
}

// Catalog is an immutable snapshot of the price table, loaded once per
// editing session and passed explicitly so the pricing path stays a pure
// function of its inputs.
type Catalog struct {
	entries map[id.ID]CatalogEntry
}

// NewCatalog builds a catalog snapshot from price table entries.
func NewCatalog(entries []CatalogEntry) *Catalog {
	m := make(map[id.ID]CatalogEntry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return &Catalog{entries: m}
}

// Resolve returns the entry for itemID, or false when the catalog has no
// such item (including the not-yet-loaded case).
func (c *Catalog) Resolve(itemID id.ID) (CatalogEntry, bool) {
	if c == nil || id.IsNil(itemID) {
		return CatalogEntry{}, false
	}
	e, ok := c.entries[itemID]
	return e, ok
}

// Len returns the number of entries in the snapshot.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// ResolveDimensions derives the dimensional figure for a line from its
// length, height and width, all in meters. All three positive yields a
// volume (m³); length and height positive yields an area (m²); anything
// else yields zero and the line prices per unit instead.
//
// Volume is checked before area: with the checks the other way around a
// three-dimension line would silently price as an area.
func ResolveDimensions(length, height, width decimal.Decimal) decimal.Decimal {
	if length.IsPositive() && height.IsPositive() && width.IsPositive() {
		return length.Mul(height).Mul(width)
	}
	if length.IsPositive() && height.IsPositive() {
		return length.Mul(height)
	}
	return decimal.Zero
}

// LinePrice holds the two derived monetary values of a budget line.
type LinePrice struct {
	// Subtotal is the pre-adjustment line value.
	Subtotal decimal.Decimal

	// FinalPrice is the value after print percentage and item discount.
	// This is what feeds the budget total.
	FinalPrice decimal.Decimal
}

// PriceLine computes a line's subtotal and final price.
//
// An unpriced item contributes nothing. A dimensional line prices by
// areaOrVolume × quantity × unitPrice, a plain line by quantity × unitPrice.
// A positive print percentage REPLACES the subtotal with that fraction of
// it — the billed share of a partial-coverage print job, not a surcharge.
// The item discount then reduces the working price.
//
// For percentages within [0,100] the result never exceeds the subtotal.
func PriceLine(unitPrice, quantity, areaOrVolume, printPct, itemDiscountPct decimal.Decimal) LinePrice {
	if !unitPrice.IsPositive() {
		return LinePrice{Subtotal: decimal.Zero, FinalPrice: decimal.Zero}
	}

	var subtotal decimal.Decimal
	if areaOrVolume.IsPositive() {
		subtotal = areaOrVolume.Mul(quantity).Mul(unitPrice)
	} else {
		subtotal = quantity.Mul(unitPrice)
	}

	working := subtotal
	if printPct.IsPositive() {
		working = subtotal.Mul(printPct).Div(types.Hundred)
	}

	final := working
	if itemDiscountPct.IsPositive() {
		final = working.Sub(working.Mul(itemDiscountPct).Div(types.Hundred))
	}

	return LinePrice{Subtotal: subtotal, FinalPrice: final}
}

// Totals is the fully derived money roll-up of a budget.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals sums line final prices and applies the header discount.
// Lines whose final price was never computed (zero, with no adjustments
// that could legitimately zero it) fall back to their stored subtotal;
// lines with no resolved item contribute zero. An empty line list yields
// all-zero totals.
func ComputeTotals(lines []Line, discountPct decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for i := range lines {
		l := &lines[i]
		v := l.FinalPrice
		if v.IsZero() && l.PrintPercentage.IsZero() && l.ItemDiscountPercentage.IsZero() {
			v = l.Subtotal
		}
		subtotal = subtotal.Add(v)
	}

	discount := subtotal.Mul(types.ClampPercent(discountPct)).Div(types.Hundred)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal.Sub(discount),
	}
}
