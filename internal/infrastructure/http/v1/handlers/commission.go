package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/domain/commission"
	"orcado/internal/infrastructure/http/v1/dto"
)

// CommissionHandler serves the /commissions routes.
type CommissionHandler struct {
	*BaseHandler
	service *commission.Service
}

// NewCommissionHandler creates a commission handler.
func NewCommissionHandler(base *BaseHandler, service *commission.Service) *CommissionHandler {
	return &CommissionHandler{BaseHandler: base, service: service}
}

// List handles GET /commissions.
func (h *CommissionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	q.Normalize()

	filter := commission.ListFilter{}
	filter.Search = q.Search
	filter.OrderBy = q.OrderBy
	filter.Limit = q.Limit
	filter.Offset = q.Offset

	sellerID, ok := h.sellerIDQuery(c)
	if !ok {
		return
	}
	filter.SellerID = sellerID

	if raw := c.Query("status"); raw != "" {
		status := commission.Status(raw)
		if !commission.IsValidStatus(status) {
			h.Error(c, apperror.NewValidation("invalid status").WithDetail("status", raw))
			return
		}
		filter.Status = &status
	}

	from, ok := h.ParseDateQuery(c, "date_from")
	if !ok {
		return
	}
	filter.DateFrom = from

	to, ok := h.ParseDateQuery(c, "date_to")
	if !ok {
		return
	}
	filter.DateTo = to

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      dto.FromCommissions(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Summary handles GET /commissions/summary.
func (h *CommissionHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sellerID, ok := h.sellerIDQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(ctx, sellerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCommissionSummary(summary))
}

// ChangeStatus handles PATCH /commissions/:id/status.
func (h *CommissionHandler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	commissionID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	to := commission.Status(req.Status)
	if !commission.IsValidStatus(to) {
		h.Error(c, apperror.NewValidation("invalid status").WithDetail("status", req.Status))
		return
	}

	updated, err := h.service.ChangeStatus(ctx, commissionID, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCommission(updated))
}

func (h *CommissionHandler) sellerIDQuery(c *gin.Context) (*id.ID, bool) {
	raw := c.Query("seller_id")
	if raw == "" {
		return nil, true
	}
	parsed, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid seller_id").WithDetail("seller_id", raw))
		return nil, false
	}
	return &parsed, true
}
