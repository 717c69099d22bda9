// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcado/internal/core/entity"
	"orcado/internal/domain"
	"orcado/internal/infrastructure/http/v1/dto"
)

// CatalogHandler provides generic HTTP handlers for catalog entities.
// A single request DTO serves both create and update; the mapper functions
// bridge it to the domain entity.
type CatalogHandler[T entity.Validatable, Req any] struct {
	*BaseHandler
	service    *domain.CatalogService[T]
	entityName string

	newEntity func(req Req) T
	applyDTO  func(req Req, existing T) T
	toDTO     func(entity T) any
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Validatable, Req any] struct {
	Service    *domain.CatalogService[T]
	EntityName string
	NewEntity  func(req Req) T
	ApplyDTO   func(req Req, existing T) T
	ToDTO      func(entity T) any
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Validatable, Req any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, Req],
) *CatalogHandler[T, Req] {
	return &CatalogHandler[T, Req]{
		BaseHandler: base,
		service:     cfg.Service,
		entityName:  cfg.EntityName,
		newEntity:   cfg.NewEntity,
		applyDTO:    cfg.ApplyDTO,
		toDTO:       cfg.ToDTO,
	}
}

// List handles GET /{entity} with filtering and pagination.
func (h *CatalogHandler[T, Req]) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	q.Normalize()

	filter := domain.ListFilter{
		Search:         q.Search,
		OrderBy:        q.OrderBy,
		IncludeDeleted: q.IncludeDeleted,
		Limit:          q.Limit,
		Offset:         q.Offset,
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.toDTO(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T, Req]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toDTO(item))
}

// Create handles POST /{entity}.
func (h *CatalogHandler[T, Req]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	item := h.newEntity(req)
	if err := h.service.Create(ctx, item); err != nil {
		h.Error(c, err)
		return
	}

	h.CreatedWith(c, h.toDTO(item))
}

// Update handles PUT /{entity}/:id.
func (h *CatalogHandler[T, Req]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.applyDTO(req, existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.toDTO(updated))
}

// Delete handles DELETE /{entity}/:id.
func (h *CatalogHandler[T, Req]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
