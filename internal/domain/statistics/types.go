// Package statistics provides the dashboard aggregates.
package statistics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the one-screen summary of the quoting pipeline.
type Dashboard struct {
	TotalBudgets    int64 `json:"totalBudgets"`
	DraftBudgets    int64 `json:"draftBudgets"`
	SentBudgets     int64 `json:"sentBudgets"`
	ApprovedBudgets int64 `json:"approvedBudgets"`
	RejectedBudgets int64 `json:"rejectedBudgets"`

	TotalClients int64 `json:"totalClients"`

	// MonthlyRevenue sums the totals of budgets approved this month
	MonthlyRevenue    decimal.Decimal `json:"monthlyRevenue"`
	ApprovedThisMonth int64           `json:"approvedThisMonth"`

	// ApprovalRate is approved / total budgets, in percent
	ApprovalRate decimal.Decimal `json:"approvalRate"`

	// CurrentMonth is the month MonthlyRevenue covers, "YYYY-MM"
	CurrentMonth string    `json:"currentMonth"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// StatusCounts holds budget counts per lifecycle status.
type StatusCounts struct {
	Draft    int64
	Sent     int64
	Approved int64
	Rejected int64
}

// Total returns the sum across all statuses.
func (c StatusCounts) Total() int64 {
	return c.Draft + c.Sent + c.Approved + c.Rejected
}

// MonthlyApprovals holds the current month's approval figures.
type MonthlyApprovals struct {
	Count   int64
	Revenue decimal.Decimal
}
