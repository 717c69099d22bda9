package budget

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/domain"
	"orcado/pkg/numerator"
)

// --- in-memory fakes ---

type fakeRepo struct {
	budgets map[id.ID]*Budget
	lines   map[id.ID][]Line
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		budgets: make(map[id.ID]*Budget),
		lines:   make(map[id.ID][]Line),
	}
}

func (r *fakeRepo) Create(ctx context.Context, b *Budget) error {
	copy := *b
	r.budgets[b.ID] = &copy
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, budgetID id.ID) (*Budget, error) {
	b, ok := r.budgets[budgetID]
	if !ok {
		return nil, apperror.NewNotFound("budget", budgetID.String())
	}
	copy := *b
	return &copy, nil
}

func (r *fakeRepo) GetByNumber(ctx context.Context, number string) (*Budget, error) {
	for _, b := range r.budgets {
		if b.Number == number {
			copy := *b
			return &copy, nil
		}
	}
	return nil, apperror.NewNotFound("budget", number)
}

func (r *fakeRepo) Update(ctx context.Context, b *Budget) error {
	if _, ok := r.budgets[b.ID]; !ok {
		return apperror.NewNotFound("budget", b.ID.String())
	}
	copy := *b
	r.budgets[b.ID] = &copy
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, budgetID id.ID) error {
	if _, ok := r.budgets[budgetID]; !ok {
		return apperror.NewNotFound("budget", budgetID.String())
	}
	delete(r.budgets, budgetID)
	return nil
}

func (r *fakeRepo) GetLines(ctx context.Context, budgetID id.ID) ([]Line, error) {
	return append([]Line(nil), r.lines[budgetID]...), nil
}

func (r *fakeRepo) SaveLines(ctx context.Context, budgetID id.ID, lines []Line) error {
	r.lines[budgetID] = append([]Line(nil), lines...)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Budget], error) {
	var items []*Budget
	for _, b := range r.budgets {
		items = append(items, b)
	}
	return domain.ListResult[*Budget]{Items: items, TotalCount: int64(len(items))}, nil
}

func (r *fakeRepo) GetForUpdate(ctx context.Context, budgetID id.ID) (*Budget, error) {
	return r.GetByID(ctx, budgetID)
}

type fakeHistory struct {
	entries []HistoryEntry
}

func (h *fakeHistory) Append(ctx context.Context, entry HistoryEntry) error {
	h.entries = append(h.entries, entry)
	return nil
}

func (h *fakeHistory) ListByBudget(ctx context.Context, budgetID id.ID, limit int) ([]HistoryEntry, error) {
	var out []HistoryEntry
	for _, e := range h.entries {
		if e.BudgetID == budgetID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCatalogSource struct {
	catalog *Catalog
}

func (s *fakeCatalogSource) Snapshot(ctx context.Context) (*Catalog, error) {
	return s.catalog, nil
}

type fakeDirectory struct {
	names map[id.ID]string
}

func (d *fakeDirectory) DisplayName(ctx context.Context, entityID id.ID) (string, error) {
	name, ok := d.names[entityID]
	if !ok {
		return "", apperror.NewNotFound("entity", entityID.String())
	}
	return name, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc     *Service
	repo    *fakeRepo
	history *fakeHistory
	itemID  id.ID
	client  id.ID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	itemID := id.New()
	clientID := id.New()

	repo := newFakeRepo()
	history := &fakeHistory{}
	svc := NewService(ServiceConfig{
		Repo:    repo,
		History: history,
		Catalog: &fakeCatalogSource{catalog: NewCatalog([]CatalogEntry{
			{ID: itemID, Code: "LON-01", Name: "Lona frontlight", UnitPrice: d("100")},
		})},
		Clients:   &fakeDirectory{names: map[id.ID]string{clientID: "ACME Transportes"}},
		Sellers:   &fakeDirectory{names: map[id.ID]string{}},
		Numerator: &numerator.MockGenerator{},
		TxManager: fakeTxManager{},
	})

	return &fixture{svc: svc, repo: repo, history: history, itemID: itemID, client: clientID}
}

func (f *fixture) draft(t *testing.T) *Budget {
	t.Helper()

	b := New(f.client, TypePlotagemAdesivo)
	b.Number = "ORC-2026-00001"
	line := NewLine()
	line.ItemID = f.itemID
	line.Quantity = d("2")
	line.Length = d("1.5")
	line.Height = d("2")
	b.AddLine(line)

	require.NoError(t, f.svc.Create(context.Background(), b))
	return b
}

// --- tests ---

func TestService_Create_RepricesAndSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := New(f.client, TypePlotagemAdesivo)
	b.Number = "ORC-2026-00001"
	line := NewLine()
	line.ItemID = f.itemID
	line.Quantity = d("2")
	line.Length = d("1.5")
	line.Height = d("2")
	// Client-sent values that must be overwritten server-side.
	line.UnitPrice = d("1")
	line.ItemName = "tampered"
	b.AddLine(line)

	require.NoError(t, f.svc.Create(ctx, b))

	assert.Equal(t, "ACME Transportes", b.ClientName)
	assert.Equal(t, "Lona frontlight", b.Lines[0].ItemName)
	assert.True(t, b.Lines[0].UnitPrice.Equal(d("100")))
	assert.True(t, b.Total.Equal(d("600")), "total %s", b.Total)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, HistoryCreated, f.history.entries[0].Action)
}

func TestService_Create_AcceptsDraftWithUnselectedLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := New(f.client, TypePlotagemAdesivo)
	b.Number = "ORC-2026-00002"
	line := NewLine()
	line.Quantity = d("1")
	b.AddLine(line)

	// Drafts may carry lines with no catalog item selected yet.
	require.NoError(t, f.svc.Create(ctx, b))
	assert.True(t, id.IsNil(b.Lines[0].ItemID))

	// Sending is where the line must be complete.
	_, err := f.svc.ChangeStatus(ctx, b.ID, StatusSent, "")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestService_Create_UnknownClient(t *testing.T) {
	f := newFixture(t)

	b := New(id.New(), TypeTroca)
	err := f.svc.Create(context.Background(), b)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestService_ChangeStatus_SendFailsClosedOnUnselectedLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.draft(t)
	bare := NewLine()
	stored := f.repo.lines[b.ID]
	f.repo.lines[b.ID] = append(stored, bare)

	_, err := f.svc.ChangeStatus(ctx, b.ID, StatusSent, "")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	// Status must not have moved.
	got, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, got.Status)
}

func TestService_ChangeStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.draft(t)

	sent, err := f.svc.ChangeStatus(ctx, b.ID, StatusSent, "")
	require.NoError(t, err)
	assert.Equal(t, StatusSent, sent.Status)

	_, err = f.svc.ChangeStatus(ctx, b.ID, StatusDraft, "")
	require.Error(t, err)

	approved, err := f.svc.ChangeStatus(ctx, b.ID, StatusApproved, "client signed")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)

	entries, err := f.svc.History(ctx, b.ID, 20)
	require.NoError(t, err)
	var statusChanges int
	for _, e := range entries {
		if e.Action == HistoryStatusChanged {
			statusChanges++
		}
	}
	assert.Equal(t, 2, statusChanges)
}

func TestService_ChangeStatus_ApprovalHookRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.draft(t)
	_, err := f.svc.ChangeStatus(ctx, b.ID, StatusSent, "")
	require.NoError(t, err)

	f.svc.OnApproved(func(ctx context.Context, b *Budget) error {
		return apperror.NewInternal(assert.AnError)
	})

	_, err = f.svc.ChangeStatus(ctx, b.ID, StatusApproved, "")
	require.Error(t, err)
}

func TestService_ChangeStatus_ApprovalHookReceivesBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.draft(t)
	_, err := f.svc.ChangeStatus(ctx, b.ID, StatusSent, "")
	require.NoError(t, err)

	var hooked *Budget
	f.svc.OnApproved(func(ctx context.Context, b *Budget) error {
		hooked = b
		return nil
	})

	_, err = f.svc.ChangeStatus(ctx, b.ID, StatusApproved, "")
	require.NoError(t, err)
	require.NotNil(t, hooked)
	assert.Equal(t, b.ID, hooked.ID)
	assert.True(t, hooked.Total.Equal(d("600")))
}

func TestService_Update_ApprovedIsReadOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.draft(t)
	_, err := f.svc.ChangeStatus(ctx, b.ID, StatusSent, "")
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, b.ID, StatusApproved, "")
	require.NoError(t, err)

	b.Observations = "late edit"
	err = f.svc.Update(ctx, b)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "BUDGET_APPROVED", appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)

	err = f.svc.Delete(ctx, b.ID)
	require.Error(t, err)
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "BUDGET_APPROVED", appErr.Code)
}

func TestService_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	src := f.draft(t)
	_, err := f.svc.ChangeStatus(ctx, src.ID, StatusSent, "")
	require.NoError(t, err)

	dup, err := f.svc.Duplicate(ctx, src.ID)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, StatusDraft, dup.Status)
	assert.Equal(t, src.ClientID, dup.ClientID)
	assert.True(t, dup.Total.Equal(src.Total))
	require.Len(t, dup.Lines, 1)
	assert.NotEqual(t, src.Lines[0].LineID, dup.Lines[0].LineID)

	entries, err := f.svc.History(ctx, dup.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, HistoryDuplicated, entries[0].Action)
	assert.Equal(t, src.ID.String(), entries[0].Changes["sourceBudgetId"])
}
