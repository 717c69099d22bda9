package dto

import (
	"time"

	"orcado/internal/core/entity"
	"orcado/internal/core/types"
	"orcado/internal/domain/catalogs/canvascolor"
	"orcado/internal/domain/catalogs/client"
	"orcado/internal/domain/catalogs/priceitem"
	"orcado/internal/domain/catalogs/seller"
)

// CatalogResponse contains fields shared by all catalog entities.
type CatalogResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	DeletionMark bool      `json:"deletion_mark"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func fromCatalog(c entity.Catalog) CatalogResponse {
	return CatalogResponse{
		ID:           c.ID.String(),
		Code:         c.Code,
		Name:         c.Name,
		DeletionMark: c.DeletionMark,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// --- Clients ---

// ClientRequest creates or updates a client.
type ClientRequest struct {
	Name          string  `json:"name" binding:"required"`
	Document      *string `json:"document"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ContactPerson *string `json:"contact_person"`
	Comment       *string `json:"comment"`
	Version       int     `json:"version"`
}

// Apply copies request fields onto a client entity.
func (r ClientRequest) Apply(c *client.Client) {
	c.Name = r.Name
	c.Document = r.Document
	c.Phone = r.Phone
	c.Email = r.Email
	c.Address = r.Address
	c.City = r.City
	c.State = r.State
	c.ContactPerson = r.ContactPerson
	c.Comment = r.Comment
}

// ClientResponse is the wire form of a client.
type ClientResponse struct {
	CatalogResponse
	Document      *string `json:"document,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Comment       *string `json:"comment,omitempty"`
}

// FromClient converts a client entity to its response.
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		CatalogResponse: fromCatalog(c.Catalog),
		Document:        c.Document,
		Phone:           c.Phone,
		Email:           c.Email,
		Address:         c.Address,
		City:            c.City,
		State:           c.State,
		ContactPerson:   c.ContactPerson,
		Comment:         c.Comment,
	}
}

// FromClients converts a client list.
func FromClients(items []*client.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromClient(c))
	}
	return out
}

// --- Sellers ---

// SellerRequest creates or updates a seller.
type SellerRequest struct {
	Name                 string        `json:"name" binding:"required"`
	Phone                *string       `json:"phone"`
	Email                *string       `json:"email"`
	CommissionPercentage types.Numeric `json:"commission_percentage"`
	Version              int           `json:"version"`
}

// Apply copies request fields onto a seller entity.
func (r SellerRequest) Apply(s *seller.Seller) {
	s.Name = r.Name
	s.Phone = r.Phone
	s.Email = r.Email
	s.CommissionPercentage = r.CommissionPercentage.Decimal
}

// SellerResponse is the wire form of a seller.
type SellerResponse struct {
	CatalogResponse
	Phone                *string       `json:"phone,omitempty"`
	Email                *string       `json:"email,omitempty"`
	CommissionPercentage types.Numeric `json:"commission_percentage"`
}

// FromSeller converts a seller entity to its response.
func FromSeller(s *seller.Seller) SellerResponse {
	return SellerResponse{
		CatalogResponse:      fromCatalog(s.Catalog),
		Phone:                s.Phone,
		Email:                s.Email,
		CommissionPercentage: types.N(s.CommissionPercentage),
	}
}

// FromSellers converts a seller list.
func FromSellers(items []*seller.Seller) []SellerResponse {
	out := make([]SellerResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSeller(s))
	}
	return out
}

// --- Price table ---

// PriceItemRequest creates or updates a price table entry.
type PriceItemRequest struct {
	Name      string        `json:"name" binding:"required"`
	Unit      string        `json:"unit" binding:"required"`
	UnitPrice types.Numeric `json:"unit_price"`
	Category  string        `json:"category"`
	Version   int           `json:"version"`
}

// Apply copies request fields onto a price item entity.
func (r PriceItemRequest) Apply(p *priceitem.PriceItem) {
	p.Name = r.Name
	p.Unit = r.Unit
	p.UnitPrice = r.UnitPrice.Decimal
	p.Category = r.Category
}

// PriceItemResponse is the wire form of a price table entry.
type PriceItemResponse struct {
	CatalogResponse
	Unit      string        `json:"unit"`
	UnitPrice types.Numeric `json:"unit_price"`
	Category  string        `json:"category,omitempty"`
}

// FromPriceItem converts a price item entity to its response.
func FromPriceItem(p *priceitem.PriceItem) PriceItemResponse {
	return PriceItemResponse{
		CatalogResponse: fromCatalog(p.Catalog),
		Unit:            p.Unit,
		UnitPrice:       types.N(p.UnitPrice),
		Category:        p.Category,
	}
}

// FromPriceItems converts a price item list.
func FromPriceItems(items []*priceitem.PriceItem) []PriceItemResponse {
	out := make([]PriceItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPriceItem(p))
	}
	return out
}

// CategoriesResponse lists price table categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// --- Canvas colors ---

// CanvasColorRequest creates or updates a canvas color.
type CanvasColorRequest struct {
	Name     string  `json:"name" binding:"required"`
	HexValue *string `json:"hex_code"`
	Version  int     `json:"version"`
}

// Apply copies request fields onto a canvas color entity.
func (r CanvasColorRequest) Apply(c *canvascolor.CanvasColor) {
	c.Name = r.Name
	c.HexValue = r.HexValue
}

// CanvasColorResponse is the wire form of a canvas color.
type CanvasColorResponse struct {
	CatalogResponse
	HexValue *string `json:"hex_code,omitempty"`
}

// FromCanvasColor converts a canvas color entity to its response.
func FromCanvasColor(c *canvascolor.CanvasColor) CanvasColorResponse {
	return CanvasColorResponse{
		CatalogResponse: fromCatalog(c.Catalog),
		HexValue:        c.HexValue,
	}
}

// FromCanvasColors converts a canvas color list.
func FromCanvasColors(items []*canvascolor.CanvasColor) []CanvasColorResponse {
	out := make([]CanvasColorResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCanvasColor(c))
	}
	return out
}
