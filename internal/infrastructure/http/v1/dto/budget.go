package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/core/types"
	"orcado/internal/domain/budget"
)

// BudgetLineRequest is one submitted line item. Quantities, dimensions and
// percentages decode leniently: unparseable input becomes zero. The server
// reprices lines from the catalog; only when an item_id is not found in the
// current snapshot does the submitted name and unit price stand.
type BudgetLineRequest struct {
	ItemID                 string        `json:"item_id"`
	ItemName               string        `json:"item_name"`
	Quantity               types.Numeric `json:"quantity"`
	UnitPrice              types.Numeric `json:"unit_price"`
	Length                 types.Numeric `json:"length"`
	Height                 types.Numeric `json:"height"`
	Width                  types.Numeric `json:"width"`
	CanvasColor            string        `json:"canvas_color"`
	PrintPercentage        types.Numeric `json:"print_percentage"`
	ItemDiscountPercentage types.Numeric `json:"item_discount_percentage"`
}

func (r BudgetLineRequest) toLine() (budget.Line, error) {
	line := budget.NewLine()

	if r.ItemID != "" {
		itemID, err := id.Parse(r.ItemID)
		if err != nil {
			return line, apperror.NewValidation("invalid item_id").
				WithDetail("item_id", r.ItemID)
		}
		line.ItemID = itemID
	}

	line.ItemName = r.ItemName
	line.UnitPrice = r.UnitPrice.Decimal
	line.Quantity = r.Quantity.Decimal
	line.Length = r.Length.Decimal
	line.Height = r.Height.Decimal
	line.Width = r.Width.Decimal
	line.CanvasColor = r.CanvasColor
	line.PrintPercentage = r.PrintPercentage.Decimal
	line.ItemDiscountPercentage = r.ItemDiscountPercentage.Decimal
	return line, nil
}

// BudgetRequest creates or updates a budget.
type BudgetRequest struct {
	ClientID             string              `json:"client_id" binding:"required"`
	SellerID             *string             `json:"seller_id"`
	BudgetType           string              `json:"budget_type" binding:"required"`
	Date                 *time.Time          `json:"date"`
	InstallationLocation string              `json:"installation_location"`
	TravelDistanceKm     types.Numeric       `json:"travel_distance_km"`
	Observations         string              `json:"observations"`
	DiscountPercentage   types.Numeric       `json:"discount_percentage"`
	ValidityDays         int                 `json:"validity_days"`
	Items                []BudgetLineRequest `json:"items"`
	Version              int                 `json:"version"`
}

// ToBudget converts the request into a budget document. Totals are left
// zero, the service recomputes them from the raw inputs.
func (r BudgetRequest) ToBudget() (*budget.Budget, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, apperror.NewValidation("invalid client_id").
			WithDetail("client_id", r.ClientID)
	}

	b := budget.New(clientID, budget.Type(r.BudgetType))

	if r.SellerID != nil && *r.SellerID != "" {
		sellerID, err := id.Parse(*r.SellerID)
		if err != nil {
			return nil, apperror.NewValidation("invalid seller_id").
				WithDetail("seller_id", *r.SellerID)
		}
		b.SellerID = &sellerID
	}

	if r.Date != nil {
		b.Date = *r.Date
	}
	b.InstallationLocation = r.InstallationLocation
	b.TravelDistanceKm = r.TravelDistanceKm.Decimal
	b.Observations = r.Observations
	b.DiscountPercentage = r.DiscountPercentage.Decimal
	if r.ValidityDays > 0 {
		b.ValidityDays = r.ValidityDays
	}
	b.Version = r.Version

	b.Lines = make([]budget.Line, 0, len(r.Items))
	for i, item := range r.Items {
		line, err := item.toLine()
		if err != nil {
			return nil, err
		}
		line.LineNo = i + 1
		b.Lines = append(b.Lines, line)
	}

	return b, nil
}

// BudgetLineResponse is the wire form of a priced line. The submitted
// `subtotal` field carries the line's final price, the name the budget
// consumers already expect. Optional dimensional fields serialize as null
// when their value is zero or empty.
type BudgetLineResponse struct {
	ItemID                 string         `json:"item_id"`
	ItemName               string         `json:"item_name"`
	Quantity               types.Numeric  `json:"quantity"`
	UnitPrice              types.Numeric  `json:"unit_price"`
	Length                 *types.Numeric `json:"length"`
	Height                 *types.Numeric `json:"height"`
	Width                  *types.Numeric `json:"width"`
	AreaM2                 *types.Numeric `json:"area_m2"`
	CanvasColor            *string        `json:"canvas_color"`
	PrintPercentage        *types.Numeric `json:"print_percentage"`
	ItemDiscountPercentage *types.Numeric `json:"item_discount_percentage"`
	Subtotal               types.Numeric  `json:"subtotal"`
}

func nullableNumeric(d decimal.Decimal) *types.Numeric {
	if d.IsZero() {
		return nil
	}
	n := types.N(d)
	return &n
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FromLine converts a budget line to its response form.
func FromLine(line budget.Line) BudgetLineResponse {
	itemID := ""
	if !id.IsNil(line.ItemID) {
		itemID = line.ItemID.String()
	}

	return BudgetLineResponse{
		ItemID:                 itemID,
		ItemName:               line.ItemName,
		Quantity:               types.N(line.Quantity),
		UnitPrice:              types.N(line.UnitPrice),
		Length:                 nullableNumeric(line.Length),
		Height:                 nullableNumeric(line.Height),
		Width:                  nullableNumeric(line.Width),
		AreaM2:                 nullableNumeric(line.AreaOrVolume),
		CanvasColor:            nullableString(line.CanvasColor),
		PrintPercentage:        nullableNumeric(line.PrintPercentage),
		ItemDiscountPercentage: nullableNumeric(line.ItemDiscountPercentage),
		Subtotal:               types.N(line.FinalPrice),
	}
}

// BudgetResponse is the wire form of a budget document.
type BudgetResponse struct {
	ID                   string               `json:"id"`
	Number               string               `json:"number"`
	Date                 time.Time            `json:"date"`
	ClientID             string               `json:"client_id"`
	ClientName           string               `json:"client_name"`
	SellerID             *string              `json:"seller_id,omitempty"`
	SellerName           *string              `json:"seller_name,omitempty"`
	BudgetType           string               `json:"budget_type"`
	Status               string               `json:"status"`
	InstallationLocation string               `json:"installation_location,omitempty"`
	TravelDistanceKm     types.Numeric        `json:"travel_distance_km"`
	Observations         string               `json:"observations,omitempty"`
	DiscountPercentage   types.Numeric        `json:"discount_percentage"`
	Subtotal             types.Numeric        `json:"subtotal"`
	DiscountAmount       types.Numeric        `json:"discount_amount"`
	Total                types.Numeric        `json:"total"`
	ValidityDays         int                  `json:"validity_days"`
	CreatedBy            string               `json:"created_by,omitempty"`
	DeletionMark         bool                 `json:"deletion_mark"`
	Version              int                  `json:"version"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
	Items                []BudgetLineResponse `json:"items"`
}

// FromBudget converts a budget document to its response form.
func FromBudget(b *budget.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:                   b.ID.String(),
		Number:               b.Number,
		Date:                 b.Date,
		ClientID:             b.ClientID.String(),
		ClientName:           b.ClientName,
		SellerName:           b.SellerName,
		BudgetType:           string(b.Type),
		Status:               string(b.Status),
		InstallationLocation: b.InstallationLocation,
		TravelDistanceKm:     types.N(b.TravelDistanceKm),
		Observations:         b.Observations,
		DiscountPercentage:   types.N(b.DiscountPercentage),
		Subtotal:             types.N(b.Subtotal),
		DiscountAmount:       types.N(b.DiscountAmount),
		Total:                types.N(b.Total),
		ValidityDays:         b.ValidityDays,
		CreatedBy:            b.CreatedBy,
		DeletionMark:         b.DeletionMark,
		Version:              b.Version,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
		Items:                make([]BudgetLineResponse, 0, len(b.Lines)),
	}

	if b.SellerID != nil {
		s := b.SellerID.String()
		resp.SellerID = &s
	}
	for _, line := range b.Lines {
		resp.Items = append(resp.Items, FromLine(line))
	}
	return resp
}

// FromBudgets converts a budget list (headers only, no lines loaded).
func FromBudgets(items []*budget.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBudget(b))
	}
	return out
}

// ChangeStatusRequest moves a budget through its lifecycle.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// BudgetTypeOption is one selectable budget type.
type BudgetTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BudgetTypesResponse lists the available budget types.
type BudgetTypesResponse struct {
	BudgetTypes []BudgetTypeOption `json:"budget_types"`
}

// HistoryEntryResponse is one audit record of a budget.
type HistoryEntryResponse struct {
	ID           string         `json:"id"`
	Action       string         `json:"action"`
	Changes      map[string]any `json:"changes,omitempty"`
	ChangedBy    string         `json:"changed_by"`
	ChangeReason string         `json:"change_reason,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// FromHistory converts history entries to their response form.
func FromHistory(entries []budget.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:           e.ID.String(),
			Action:       string(e.Action),
			Changes:      e.Changes,
			ChangedBy:    e.ChangedBy,
			ChangeReason: e.ChangeReason,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
