package budget

import (
	"context"
	"fmt"
	"time"

	"orcado/internal/core/appctx"
	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/core/tx"
	"orcado/internal/domain"
	"orcado/pkg/logger"
	"orcado/pkg/numerator"
)

// NumeratorPrefix is the budget number series prefix (ORC-YYYY-NNNNN).
const NumeratorPrefix = "ORC"

// PriceCatalogSource loads the current price table as an immutable
// snapshot for line resolution.
type PriceCatalogSource interface {
	Snapshot(ctx context.Context) (*Catalog, error)
}

// ClientDirectory resolves client display names for denormalization
// onto the budget header.
type ClientDirectory interface {
	DisplayName(ctx context.Context, clientID id.ID) (string, error)
}

// SellerDirectory resolves seller display names.
type SellerDirectory interface {
	DisplayName(ctx context.Context, sellerID id.ID) (string, error)
}

// ApprovalHook runs when a budget reaches APPROVED, inside the status
// change transaction. Commission recording registers here.
type ApprovalHook func(ctx context.Context, b *Budget) error

// Service provides business operations for budget documents.
type Service struct {
	repo      Repository
	history   HistoryStore
	catalog   PriceCatalogSource
	clients   ClientDirectory
	sellers   SellerDirectory
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Budget]

	onApproved []ApprovalHook
}

// ServiceConfig wires the budget service dependencies.
type ServiceConfig struct {
	Repo      Repository
	History   HistoryStore
	Catalog   PriceCatalogSource
	Clients   ClientDirectory
	Sellers   SellerDirectory
	Numerator numerator.Generator
	TxManager tx.Manager
}

// NewService creates a budget service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:      cfg.Repo,
		history:   cfg.History,
		catalog:   cfg.Catalog,
		clients:   cfg.Clients,
		sellers:   cfg.Sellers,
		numerator: cfg.Numerator,
		txManager: cfg.TxManager,
		hooks:     domain.NewHookRegistry[*Budget](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Budget] {
	return s.hooks
}

// OnApproved registers a hook to run inside the approval transaction.
// A hook error rolls the status change back.
func (s *Service) OnApproved(hook ApprovalHook) {
	s.onApproved = append(s.onApproved, hook)
}

// resolveAndPrice re-resolves every line against the current price table
// and recomputes all derived money values. Client-sent totals are never
// trusted.
func (s *Service) resolveAndPrice(ctx context.Context, b *Budget) error {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("load price catalog: %w", err)
	}
	for i := range b.Lines {
		b.Lines[i].ApplySelection(catalog)
	}
	b.Recalculate()
	return nil
}

// snapshotNames copies client and seller display names onto the header.
func (s *Service) snapshotNames(ctx context.Context, b *Budget) error {
	name, err := s.clients.DisplayName(ctx, b.ClientID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewValidation("client does not exist").
				WithDetail("field", "clientId").
				WithDetail("value", b.ClientID.String())
		}
		return fmt.Errorf("resolve client: %w", err)
	}
	b.ClientName = name

	if b.SellerID != nil && !id.IsNil(*b.SellerID) {
		sellerName, err := s.sellers.DisplayName(ctx, *b.SellerID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewValidation("seller does not exist").
					WithDetail("field", "sellerId").
					WithDetail("value", b.SellerID.String())
			}
			return fmt.Errorf("resolve seller: %w", err)
		}
		b.SellerName = &sellerName
	} else {
		b.SellerID = nil
		b.SellerName = nil
	}

	return nil
}

// Create creates a new budget document.
func (s *Service) Create(ctx context.Context, b *Budget) error {
	if err := s.hooks.RunBeforeCreate(ctx, b); err != nil {
		return err
	}

	if err := s.resolveAndPrice(ctx, b); err != nil {
		return err
	}
	if err := s.snapshotNames(ctx, b); err != nil {
		return err
	}

	if err := b.Validate(ctx); err != nil {
		return err
	}

	if b.CreatedBy == "" {
		b.CreatedBy = appctx.GetUsername(ctx)
	}

	if b.Number == "" {
		cfg := numerator.DefaultConfig(NumeratorPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		b.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, b); err != nil {
			return fmt.Errorf("create budget: %w", err)
		}
		if err := s.repo.SaveLines(ctx, b.ID, b.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}

		entry := NewHistoryEntry(b.ID, HistoryCreated, appctx.GetUsername(ctx)).
			WithChange("number", b.Number)
		if err := s.history.Append(ctx, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, b); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "budget created",
		"id", b.ID,
		"number", b.Number,
		"total", b.Total)

	return nil
}

// GetByID retrieves a budget with its lines.
func (s *Service) GetByID(ctx context.Context, budgetID id.ID) (*Budget, error) {
	b, err := s.repo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	b.Lines = lines

	return b, nil
}

// GetByNumber retrieves a budget by its document number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Budget, error) {
	b, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	b.Lines = lines

	return b, nil
}

// Update updates a budget's content. Status never changes here, only
// through ChangeStatus. Approved budgets are read-only.
func (s *Service) Update(ctx context.Context, b *Budget) error {
	if err := s.hooks.RunBeforeUpdate(ctx, b); err != nil {
		return err
	}

	if err := s.resolveAndPrice(ctx, b); err != nil {
		return err
	}
	if err := s.snapshotNames(ctx, b); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetForUpdate(ctx, b.ID)
		if err != nil {
			return err
		}
		if existing.Status == StatusApproved {
			return apperror.NewBusinessRule("BUDGET_APPROVED", "approved budget cannot be modified")
		}

		// Content edits keep the lifecycle fields as stored.
		b.Number = existing.Number
		b.Status = existing.Status
		b.CreatedAt = existing.CreatedAt

		if err := b.Validate(ctx); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, b); err != nil {
			return fmt.Errorf("update budget: %w", err)
		}
		if err := s.repo.SaveLines(ctx, b.ID, b.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}

		entry := NewHistoryEntry(b.ID, HistoryUpdated, appctx.GetUsername(ctx)).
			WithChange("total", b.Total.String()).
			WithChange("lineCount", len(b.Lines))
		if err := s.history.Append(ctx, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, b); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// Delete soft-deletes a budget. Approved budgets cannot be deleted.
func (s *Service) Delete(ctx context.Context, budgetID id.ID) error {
	b, err := s.repo.GetByID(ctx, budgetID)
	if err != nil {
		return err
	}
	if b.Status == StatusApproved {
		return apperror.NewBusinessRule("BUDGET_APPROVED", "approved budget cannot be deleted")
	}

	if err := s.hooks.RunBeforeDelete(ctx, b); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, budgetID); err != nil {
		return err
	}

	if err := s.hooks.RunAfterDelete(ctx, b); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "error", err)
	}

	logger.Info(ctx, "budget deleted", "id", budgetID, "number", b.Number)
	return nil
}

// Duplicate creates a fresh draft copy of a budget with a new number.
// The copy takes the source's content as of now; later edits to either
// budget never affect the other.
func (s *Service) Duplicate(ctx context.Context, sourceID id.ID) (*Budget, error) {
	source, err := s.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	dup := New(source.ClientID, source.Type)
	dup.ClientName = source.ClientName
	dup.SellerID = source.SellerID
	dup.SellerName = source.SellerName
	dup.InstallationLocation = source.InstallationLocation
	dup.TravelDistanceKm = source.TravelDistanceKm
	dup.Observations = source.Observations
	dup.DiscountPercentage = source.DiscountPercentage
	dup.ValidityDays = source.ValidityDays
	dup.CreatedBy = appctx.GetUsername(ctx)

	for _, line := range source.Lines {
		line.LineID = id.New()
		dup.Lines = append(dup.Lines, line)
	}
	dup.Recalculate()

	cfg := numerator.DefaultConfig(NumeratorPrefix)
	number, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
	if err != nil {
		return nil, fmt.Errorf("generate number: %w", err)
	}
	dup.Number = number

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, dup); err != nil {
			return fmt.Errorf("create budget: %w", err)
		}
		if err := s.repo.SaveLines(ctx, dup.ID, dup.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}

		entry := NewHistoryEntry(dup.ID, HistoryDuplicated, appctx.GetUsername(ctx)).
			WithChange("sourceBudgetId", sourceID.String()).
			WithChange("sourceNumber", source.Number)
		if err := s.history.Append(ctx, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "budget duplicated",
		"sourceId", sourceID,
		"id", dup.ID,
		"number", dup.Number)

	return dup, nil
}

// ChangeStatus moves a budget along its lifecycle. Sending revalidates
// and reprices the document against the current price table and fails
// closed on any incomplete line. Approval runs the registered approval
// hooks inside the same transaction.
func (s *Service) ChangeStatus(ctx context.Context, budgetID id.ID, to Status, reason string) (*Budget, error) {
	var b *Budget

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.repo.GetForUpdate(ctx, budgetID)
		if err != nil {
			return err
		}
		lines, err := s.repo.GetLines(ctx, budgetID)
		if err != nil {
			return fmt.Errorf("get lines: %w", err)
		}
		b.Lines = lines

		from := b.Status

		repriced := false
		if to == StatusSent {
			if err := s.resolveAndPrice(ctx, b); err != nil {
				return err
			}
			if err := b.ValidateForSubmit(ctx); err != nil {
				return err
			}
			repriced = true
		}

		if err := b.ChangeStatus(to); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, b); err != nil {
			return fmt.Errorf("update budget: %w", err)
		}
		if repriced {
			if err := s.repo.SaveLines(ctx, b.ID, b.Lines); err != nil {
				return fmt.Errorf("save lines: %w", err)
			}
		}

		entry := NewHistoryEntry(b.ID, HistoryStatusChanged, appctx.GetUsername(ctx)).
			WithChange("from", string(from)).
			WithChange("to", string(to)).
			WithReason(reason)
		if err := s.history.Append(ctx, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if to == StatusApproved {
			for _, hook := range s.onApproved {
				if err := hook(ctx, b); err != nil {
					return fmt.Errorf("approval hook: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "budget status changed",
		"id", b.ID,
		"number", b.Number,
		"status", b.Status)

	return b, nil
}

// History returns the audit trail of a budget, newest first.
func (s *Service) History(ctx context.Context, budgetID id.ID, limit int) ([]HistoryEntry, error) {
	if _, err := s.repo.GetByID(ctx, budgetID); err != nil {
		return nil, err
	}
	return s.history.ListByBudget(ctx, budgetID, limit)
}

// List retrieves budgets with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Budget], error) {
	return s.repo.List(ctx, filter)
}
