package budget

import (
	"context"
	"time"

	"orcado/internal/core/id"
	"orcado/internal/domain"
)

// Repository defines persistence operations for budget documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, b *Budget) error
	GetByID(ctx context.Context, budgetID id.ID) (*Budget, error)
	GetByNumber(ctx context.Context, number string) (*Budget, error)
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, budgetID id.ID) error

	// Line operations
	GetLines(ctx context.Context, budgetID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, budgetID id.ID, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Budget], error)

	// Locking
	GetForUpdate(ctx context.Context, budgetID id.ID) (*Budget, error)
}

// ListFilter for filtering budgets.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClientID *id.ID
	SellerID *id.ID
	Status   *Status
	Type     *Type
	DateFrom *time.Time
	DateTo   *time.Time
}
