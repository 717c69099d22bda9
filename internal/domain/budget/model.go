// Package budget provides the Budget document and its pricing engine.
package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"orcado/internal/core/apperror"
	"orcado/internal/core/entity"
	"orcado/internal/core/id"
	"orcado/internal/core/types"
)

// Budget represents a quote document for a client: a header plus priced
// line items. All money roll-ups are derived and recomputed on change.
type Budget struct {
	entity.Document

	// Client reference with denormalized display name
	ClientID   id.ID  `db:"client_id" json:"clientId"`
	ClientName string `db:"client_name" json:"clientName"`

	// Optional seller (drives commission on approval)
	SellerID   *id.ID  `db:"seller_id" json:"sellerId,omitempty"`
	SellerName *string `db:"seller_name" json:"sellerName,omitempty"`

	Type Type `db:"budget_type" json:"budgetType"`

	InstallationLocation string          `db:"installation_location" json:"installationLocation,omitempty"`
	TravelDistanceKm     decimal.Decimal `db:"travel_distance_km" json:"travelDistanceKm"`
	Observations         string          `db:"observations" json:"observations,omitempty"`

	// Global discount applied to the sum of line final prices
	DiscountPercentage decimal.Decimal `db:"discount_percentage" json:"discountPercentage"`

	// Derived totals
	Subtotal       decimal.Decimal `db:"subtotal" json:"subtotal"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discountAmount"`
	Total          decimal.Decimal `db:"total" json:"total"`

	ValidityDays int    `db:"validity_days" json:"validityDays"`
	Status       Status `db:"status" json:"status"`

	// Table part
	Lines []Line `db:"-" json:"lines"`
}

// Line is one priced row of a budget.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	// ItemID references a price catalog entry; Nil means no item selected
	// yet. ItemName and UnitPrice are snapshots taken at selection time.
	ItemID    id.ID           `db:"item_id" json:"itemId"`
	ItemName  string          `db:"item_name" json:"itemName"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`

	Quantity decimal.Decimal `db:"quantity" json:"quantity"`

	// Dimensions in meters; zero means unused
	Length decimal.Decimal `db:"length" json:"length"`
	Height decimal.Decimal `db:"height" json:"height"`
	Width  decimal.Decimal `db:"width" json:"width"`

	// AreaOrVolume is derived from the dimensions, never set directly
	AreaOrVolume decimal.Decimal `db:"area_or_volume" json:"areaOrVolume"`

	// CanvasColor is descriptive only; empty means none
	CanvasColor string `db:"canvas_color" json:"canvasColor,omitempty"`

	PrintPercentage        decimal.Decimal `db:"print_percentage" json:"printPercentage"`
	ItemDiscountPercentage decimal.Decimal `db:"item_discount_percentage" json:"itemDiscountPercentage"`

	// Derived money values
	Subtotal   decimal.Decimal `db:"subtotal" json:"subtotal"`
	FinalPrice decimal.Decimal `db:"final_price" json:"finalPrice"`
}

// New creates a draft budget for a client.
func New(clientID id.ID, budgetType Type) *Budget {
	return &Budget{
		Document:     entity.NewDocument(),
		ClientID:     clientID,
		Type:         budgetType,
		ValidityDays: 30,
		Status:       StatusDraft,
		Lines:        make([]Line, 0),
	}
}

// NewLine creates an empty line with the flow's defaults.
func NewLine() Line {
	return Line{
		LineID:   id.New(),
		Quantity: decimal.NewFromInt(1),
	}
}

// ApplySelection resolves the line's item reference against the catalog
// snapshot and copies name and unit price onto the line. A missing entry
// is a silent no-op: the previously resolved values stay untouched, which
// keeps the editing flow tolerant of a not-yet-loaded price table.
func (l *Line) ApplySelection(catalog *Catalog) {
	entry, ok := catalog.Resolve(l.ItemID)
	if !ok {
		return
	}
	l.ItemName = entry.Name
	l.UnitPrice = entry.UnitPrice
}

// Recalculate rederives the line's area/volume, subtotal and final price
// from its raw inputs. Pure and idempotent.
func (l *Line) Recalculate() {
	l.AreaOrVolume = ResolveDimensions(l.Length, l.Height, l.Width)
	lp := PriceLine(l.UnitPrice, l.Quantity, l.AreaOrVolume, l.PrintPercentage, l.ItemDiscountPercentage)
	l.Subtotal = lp.Subtotal
	l.FinalPrice = lp.FinalPrice
}

// AddLine appends a line and recalculates the budget.
func (b *Budget) AddLine(line Line) {
	if id.IsNil(line.LineID) {
		line.LineID = id.New()
	}
	line.LineNo = len(b.Lines) + 1
	b.Lines = append(b.Lines, line)
	b.Recalculate()
}

// RemoveLine deletes the line at index i and renumbers the rest.
func (b *Budget) RemoveLine(i int) {
	if i < 0 || i >= len(b.Lines) {
		return
	}
	b.Lines = append(b.Lines[:i], b.Lines[i+1:]...)
	for n := range b.Lines {
		b.Lines[n].LineNo = n + 1
	}
	b.Recalculate()
}

// Recalculate recomputes every line and the budget totals. Called
// synchronously after any mutation so no stale derived value survives
// an edit.
func (b *Budget) Recalculate() {
	for i := range b.Lines {
		b.Lines[i].Recalculate()
	}
	totals := ComputeTotals(b.Lines, b.DiscountPercentage)
	b.Subtotal = totals.Subtotal
	b.DiscountAmount = totals.DiscountAmount
	b.Total = totals.Total
}

// Validate implements entity.Validatable. It checks header invariants and
// line field bounds; line item references are allowed to be unset here so
// drafts can be previewed. Submission uses ValidateForSubmit.
func (b *Budget) Validate(ctx context.Context) error {
	if err := b.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(b.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if !IsValidType(b.Type) {
		return apperror.NewValidation("invalid budget type").
			WithDetail("field", "budgetType").
			WithDetail("value", string(b.Type))
	}

	if !IsValidStatus(b.Status) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(b.Status))
	}

	if b.DiscountPercentage.IsNegative() || b.DiscountPercentage.GreaterThan(types.Hundred) {
		return apperror.NewValidation("discount percentage must be between 0 and 100").
			WithDetail("field", "discountPercentage")
	}

	if b.TravelDistanceKm.IsNegative() {
		return apperror.NewValidation("travel distance must not be negative").
			WithDetail("field", "travelDistanceKm")
	}

	for i := range b.Lines {
		if err := b.Lines[i].validate(); err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				return appErr.WithDetail("lineNo", i+1)
			}
			return err
		}
	}

	return nil
}

// ValidateForSubmit runs full validation plus the fail-closed submission
// rules: at least one line, and every line must reference a catalog item.
func (b *Budget) ValidateForSubmit(ctx context.Context) error {
	if err := b.Validate(ctx); err != nil {
		return err
	}

	if len(b.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i := range b.Lines {
		if id.IsNil(b.Lines[i].ItemID) {
			return apperror.NewValidation("every line must reference a price table item").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

func (l *Line) validate() error {
	if !l.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	if l.Length.IsNegative() || l.Height.IsNegative() || l.Width.IsNegative() {
		return apperror.NewValidation("dimensions must not be negative").
			WithDetail("field", "dimensions")
	}
	if l.PrintPercentage.IsNegative() || l.PrintPercentage.GreaterThan(types.Hundred) {
		return apperror.NewValidation("print percentage must be between 0 and 100").
			WithDetail("field", "printPercentage")
	}
	if l.ItemDiscountPercentage.IsNegative() || l.ItemDiscountPercentage.GreaterThan(types.Hundred) {
		return apperror.NewValidation("item discount percentage must be between 0 and 100").
			WithDetail("field", "itemDiscountPercentage")
	}
	return nil
}

// ChangeStatus moves the budget along its lifecycle, rejecting moves the
// transition table does not allow.
func (b *Budget) ChangeStatus(to Status) error {
	if !IsValidStatus(to) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(to))
	}
	if !CanTransition(b.Status, to) {
		return apperror.NewInvalidStatusChange(string(b.Status), string(to))
	}
	b.Status = to
	b.Touch()
	return nil
}

// Ensure interface compliance at compile time.
var _ entity.Validatable = (*Budget)(nil)
