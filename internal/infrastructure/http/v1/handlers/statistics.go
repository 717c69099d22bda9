package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcado/internal/domain/statistics"
	"orcado/internal/infrastructure/http/v1/dto"
)

// StatisticsHandler serves the /statistics routes.
type StatisticsHandler struct {
	*BaseHandler
	service *statistics.Service
}

// NewStatisticsHandler creates a statistics handler.
func NewStatisticsHandler(base *BaseHandler, service *statistics.Service) *StatisticsHandler {
	return &StatisticsHandler{BaseHandler: base, service: service}
}

// Budgets handles GET /statistics/budgets.
func (h *StatisticsHandler) Budgets(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDashboard(dashboard))
}
