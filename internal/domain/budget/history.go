package budget

import (
	"context"
	"time"

	"orcado/internal/core/id"
)

// HistoryAction classifies a history entry.
type HistoryAction string

const (
	HistoryCreated       HistoryAction = "created"
	HistoryUpdated       HistoryAction = "updated"
	HistoryStatusChanged HistoryAction = "status_changed"
	HistoryDuplicated    HistoryAction = "duplicated_from"
)

// HistoryEntry is one audit record of a budget's evolution. Changes holds
// action-specific payload: the field deltas for updates, from/to statuses
// for lifecycle moves, the source budget ID for duplication.
type HistoryEntry struct {
	ID       id.ID         `db:"id" json:"id"`
	BudgetID id.ID         `db:"budget_id" json:"budgetId"`
	Action   HistoryAction `db:"action" json:"action"`

	Changes map[string]any `db:"changes" json:"changes"`

	ChangedBy    string    `db:"changed_by" json:"changedBy"`
	ChangeReason string    `db:"change_reason" json:"changeReason,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewHistoryEntry builds an entry for a budget action.
func NewHistoryEntry(budgetID id.ID, action HistoryAction, changedBy string) HistoryEntry {
	return HistoryEntry{
		ID:        id.New(),
		BudgetID:  budgetID,
		Action:    action,
		Changes:   make(map[string]any),
		ChangedBy: changedBy,
		CreatedAt: time.Now().UTC(),
	}
}

// WithChange adds one key to the entry's payload.
func (e HistoryEntry) WithChange(key string, value any) HistoryEntry {
	e.Changes[key] = value
	return e
}

// WithReason sets the free-form reason for the change.
func (e HistoryEntry) WithReason(reason string) HistoryEntry {
	e.ChangeReason = reason
	return e
}

// HistoryStore persists and reads budget history.
type HistoryStore interface {
	Append(ctx context.Context, entry HistoryEntry) error
	ListByBudget(ctx context.Context, budgetID id.ID, limit int) ([]HistoryEntry, error)
}
