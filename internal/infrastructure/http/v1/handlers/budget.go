package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/domain/budget"
	"orcado/internal/infrastructure/http/v1/dto"
)

// typeLabels maps budget types to their display labels.
var typeLabels = map[budget.Type]string{
	budget.TypeRemocao:              "Remoção",
	budget.TypeImplantacaoAutomidia: "Implantação Automídia",
	budget.TypeTroca:                "Troca",
	budget.TypePlotagemAdesivo:      "Plotagem Adesivo",
	budget.TypeSiderUV:              "Sider e UV",
}

// BudgetHandler serves the /budgets routes.
type BudgetHandler struct {
	*BaseHandler
	service *budget.Service
}

// NewBudgetHandler creates a budget handler.
func NewBudgetHandler(base *BaseHandler, service *budget.Service) *BudgetHandler {
	return &BudgetHandler{BaseHandler: base, service: service}
}

// Types handles GET /budget-types.
func (h *BudgetHandler) Types(c *gin.Context) {
	types := budget.Types()
	options := make([]dto.BudgetTypeOption, 0, len(types))
	for _, t := range types {
		label := typeLabels[t]
		if label == "" {
			label = string(t)
		}
		options = append(options, dto.BudgetTypeOption{Value: string(t), Label: label})
	}
	c.JSON(http.StatusOK, dto.BudgetTypesResponse{BudgetTypes: options})
}

// List handles GET /budgets.
func (h *BudgetHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	q.Normalize()

	filter := budget.ListFilter{}
	filter.Search = q.Search
	filter.OrderBy = q.OrderBy
	filter.IncludeDeleted = q.IncludeDeleted
	filter.Limit = q.Limit
	filter.Offset = q.Offset

	if raw := c.Query("client_id"); raw != "" {
		clientID, ok := h.parseQueryID(c, "client_id", raw)
		if !ok {
			return
		}
		filter.ClientID = &clientID
	}
	if raw := c.Query("seller_id"); raw != "" {
		sellerID, ok := h.parseQueryID(c, "seller_id", raw)
		if !ok {
			return
		}
		filter.SellerID = &sellerID
	}
	if raw := c.Query("status"); raw != "" {
		status := budget.Status(raw)
		if !budget.IsValidStatus(status) {
			h.Error(c, apperror.NewValidation("invalid status").WithDetail("status", raw))
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("budget_type"); raw != "" {
		budgetType := budget.Type(raw)
		if !budget.IsValidType(budgetType) {
			h.Error(c, apperror.NewValidation("invalid budget type").WithDetail("budget_type", raw))
			return
		}
		filter.Type = &budgetType
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
		Items:      dto.FromBudgets(result.Items),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /budgets/:id.
func (h *BudgetHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	budgetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetByID(ctx, budgetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBudget(b))
}

// Create handles POST /budgets. Idempotency-key aware: the middleware
// replays a completed response for a retried key before we get here.
func (h *BudgetHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BudgetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := req.ToBudget()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, b); err != nil {
		h.Error(c, err)
		return
	}

	h.CreatedWith(c, dto.FromBudget(b))
}

// Update handles PUT /budgets/:id.
func (h *BudgetHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	budgetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.BudgetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := req.ToBudget()
	if err != nil {
		h.Error(c, err)
		return
	}
	b.ID = budgetID

	if err := h.service.Update(ctx, b); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBudget(b))
}

// Delete handles DELETE /budgets/:id.
func (h *BudgetHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	budgetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, budgetID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Duplicate handles POST /budgets/:id/duplicate.
func (h *BudgetHandler) Duplicate(c *gin.Context) {
	ctx := c.Request.Context()

	budgetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	dup, err := h.service.Duplicate(ctx, budgetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.CreatedWith(c, dto.FromBudget(dup))
}

// ChangeStatus handles PATCH /budgets/:id/status.
func (h *BudgetHandler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	budgetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	to := budget.Status(req.Status)
	if !budget.IsValidStatus(to) {
		h.Error(c, apperror.NewValidation("invalid status").WithDetail("status", req.Status))
		return
	}

	b, err := h.service.ChangeStatus(ctx, budgetID, to, req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBudget(b))
}

// History handles GET /budgets/:id/history.
func (h *BudgetHandler) History(c *gin.Context) {
	ctx := c.Request.Context()

	budgetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	limit := h.ParseIntQuery(c, "limit", 100)
	entries, err := h.service.History(ctx, budgetID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromHistory(entries))
}

func (h *BudgetHandler) parseQueryID(c *gin.Context, key, raw string) (id.ID, bool) {
	val, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid "+key).WithDetail(key, raw))
		return id.Nil(), false
	}
	return val, true
}
