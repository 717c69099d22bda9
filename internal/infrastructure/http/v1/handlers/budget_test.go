package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/infrastructure/http/v1/dto"
	"orcado/internal/infrastructure/http/v1/middleware"
)

func budgetTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	handler := NewBudgetHandler(NewBaseHandler(), nil)
	router.GET("/budget-types", handler.Types)
	router.GET("/budgets/:id", handler.Get)
	router.PATCH("/budgets/:id/status", handler.ChangeStatus)
	return router
}

func TestBudgetTypes(t *testing.T) {
	router := budgetTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budget-types", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BudgetTypesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.BudgetTypes, 5)

	values := make([]string, 0, len(resp.BudgetTypes))
	for _, opt := range resp.BudgetTypes {
		values = append(values, opt.Value)
		assert.NotEmpty(t, opt.Label)
	}
	assert.Contains(t, values, "REMOÇÃO")
	assert.Contains(t, values, "SIDER E UV")
}

func TestBudgetGet_InvalidID(t *testing.T) {
	router := budgetTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestBudgetChangeStatus_InvalidStatus(t *testing.T) {
	router := budgetTestRouter()

	body := strings.NewReader(`{"status": "SHIPPED"}`)
	req := httptest.NewRequest(http.MethodPatch, "/budgets/0198c8b2-7cbd-7a43-8b52-0ff4d2f0b1aa/status", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
