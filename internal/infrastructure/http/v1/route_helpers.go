// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// All catalog handlers must implement these methods.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
// mutationGuards run on create/update/delete only; reads stay open to any
// authenticated user.
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler, mutationGuards ...gin.HandlerFunc) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)

	mutations := group.Group("")
	for _, guard := range mutationGuards {
		mutations.Use(guard)
	}
	mutations.POST("", handler.Create)
	mutations.PUT("/:id", handler.Update)
	mutations.DELETE("/:id", handler.Delete)
}
