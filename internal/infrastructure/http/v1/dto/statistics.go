package dto

import (
	"time"

	"orcado/internal/core/types"
	"orcado/internal/domain/statistics"
)

// DashboardResponse is the budget statistics snapshot.
type DashboardResponse struct {
	TotalBudgets    int64 `json:"total_budgets"`
	DraftBudgets    int64 `json:"draft_budgets"`
	SentBudgets     int64 `json:"sent_budgets"`
	ApprovedBudgets int64 `json:"approved_budgets"`
	RejectedBudgets int64 `json:"rejected_budgets"`

	TotalClients int64 `json:"total_clients"`

	MonthlyRevenue    types.Numeric `json:"monthly_revenue"`
	ApprovedThisMonth int64         `json:"approved_this_month"`
	ApprovalRate      types.Numeric `json:"approval_rate"`

	CurrentMonth string    `json:"current_month"`
	LastUpdated  time.Time `json:"last_updated"`
}

func FromDashboard(d statistics.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalBudgets:      d.TotalBudgets,
		DraftBudgets:      d.DraftBudgets,
		SentBudgets:       d.SentBudgets,
		ApprovedBudgets:   d.ApprovedBudgets,
		RejectedBudgets:   d.RejectedBudgets,
		TotalClients:      d.TotalClients,
		MonthlyRevenue:    types.N(d.MonthlyRevenue),
		ApprovedThisMonth: d.ApprovedThisMonth,
		ApprovalRate:      types.N(d.ApprovalRate),
		CurrentMonth:      d.CurrentMonth,
		LastUpdated:       d.LastUpdated,
	}
}
