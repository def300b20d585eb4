package ledger

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/types"
	"traso/internal/domain"
	"traso/internal/domain/catalogs/item"
)

// --- In-memory fakes ---

type fakeState struct {
	items   map[id.ID]*item.Item
	entries map[id.ID]*Entry
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		items:   make(map[id.ID]*item.Item, len(s.items)),
		entries: make(map[id.ID]*Entry, len(s.entries)),
	}
	for k, v := range s.items {
		cp := *v
		c.items[k] = &cp
	}
	for k, v := range s.entries {
		cp := *v
		c.entries[k] = &cp
	}
	return c
}

func (s *fakeState) restore(from *fakeState) {
	s.items = from.items
	s.entries = from.entries
}

// fakeTxManager snapshots the fake state before fn and restores it on error,
// mimicking rollback semantics.
type fakeTxManager struct {
	state *fakeState
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := m.state.clone()
	if err := fn(ctx); err != nil {
		m.state.restore(snapshot)
		return err
	}
	return nil
}

type fakeItemRepo struct {
	state *fakeState
}

func (r *fakeItemRepo) Create(ctx context.Context, it *item.Item) error {
	r.state.items[it.ID] = it
	return nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, itemID id.ID) (*item.Item, error) {
	it, ok := r.state.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("item", itemID.String())
	}
	return it, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, it *item.Item) error {
	r.state.items[it.ID] = it
	return nil
}

func (r *fakeItemRepo) SetActive(ctx context.Context, itemID id.ID, active bool) error {
	it, ok := r.state.items[itemID]
	if !ok {
		return apperror.NewNotFound("item", itemID.String())
	}
	it.IsActive = active
	return nil
}

func (r *fakeItemRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	var items []*item.Item
	for _, it := range r.state.items {
		items = append(items, it)
	}
	return domain.ListResult[*item.Item]{Items: items, TotalCount: int64(len(items))}, nil
}

func (r *fakeItemRepo) Exists(ctx context.Context, itemID id.ID) (bool, error) {
	_, ok := r.state.items[itemID]
	return ok, nil
}

func (r *fakeItemRepo) ApplyStockDelta(ctx context.Context, itemID id.ID, delta types.Quantity) error {
	it, ok := r.state.items[itemID]
	if !ok {
		return apperror.NewNotFound("item", itemID.String())
	}
	it.CurrentStock = it.CurrentStock.Add(delta)
	return nil
}

func (r *fakeItemRepo) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	var items []*item.Item
	for _, it := range r.state.items {
		if it.IsLowStock() {
			items = append(items, it)
		}
	}
	return domain.ListResult[*item.Item]{Items: items, TotalCount: int64(len(items))}, nil
}

type fakeEntryRepo struct {
	state *fakeState
}

func (r *fakeEntryRepo) Create(ctx context.Context, e *Entry) error {
	cp := *e
	r.state.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, entryID id.ID) (*Entry, error) {
	e, ok := r.state.entries[entryID]
	if !ok {
		return nil, apperror.NewNotFound("stock entry", entryID.String())
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntryRepo) Update(ctx context.Context, e *Entry) error {
	if _, ok := r.state.entries[e.ID]; !ok {
		return apperror.NewNotFound("stock entry", e.ID.String())
	}
	cp := *e
	r.state.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) Delete(ctx context.Context, entryID id.ID) error {
	if _, ok := r.state.entries[entryID]; !ok {
		return apperror.NewNotFound("stock entry", entryID.String())
	}
	delete(r.state.entries, entryID)
	return nil
}

func (r *fakeEntryRepo) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	var entries []*Entry
	for _, e := range r.state.entries {
		if filter.ItemID != nil && e.ItemID != *filter.ItemID {
			continue
		}
		cp := *e
		entries = append(entries, &cp)
	}
	return entries, nil
}

func (r *fakeEntryRepo) PriceHistory(ctx context.Context, itemID id.ID) ([]PricePoint, error) {
	var points []PricePoint
	for _, e := range r.state.entries {
		if e.ItemID != itemID || e.UnitPrice == nil {
			continue
		}
		points = append(points, PricePoint{
			Date:      e.EntryDate,
			Price:     *e.UnitPrice,
			Direction: e.Direction,
			Quantity:  e.Quantity,
			Notes:     e.Notes,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.After(points[j].Date)
	})
	return points, nil
}

// --- Test setup ---

func newTestService(t *testing.T) (*Service, *fakeState, *item.Item) {
	t.Helper()

	state := &fakeState{
		items:   make(map[id.ID]*item.Item),
		entries: make(map[id.ID]*Entry),
	}
	it := item.New("Trà đen", "kg")
	state.items[it.ID] = it

	svc := NewService(
		&fakeEntryRepo{state: state},
		&fakeItemRepo{state: state},
		&fakeTxManager{state: state},
		nil,
	)
	return svc, state, it
}

func mustCreate(t *testing.T, svc *Service, itemID id.ID, dir Direction, qty string) *Entry {
	t.Helper()
	e := NewEntry(itemID, dir, decimal.RequireFromString(qty), time.Now())
	require.NoError(t, svc.Create(context.Background(), e))
	return e
}

func stockOf(state *fakeState, itemID id.ID) decimal.Decimal {
	return state.items[itemID].CurrentStock
}

// --- Balance maintainer ---

func TestCreate_InIncreasesStock(t *testing.T) {
	svc, state, it := newTestService(t)

	mustCreate(t, svc, it.ID, DirectionIn, "50")

	assert.True(t, decimal.RequireFromString("50").Equal(stockOf(state, it.ID)))
}

func TestCreate_OutDecreasesStock(t *testing.T) {
	svc, state, it := newTestService(t)

	mustCreate(t, svc, it.ID, DirectionIn, "50")
	mustCreate(t, svc, it.ID, DirectionOut, "20")

	assert.True(t, decimal.RequireFromString("30").Equal(stockOf(state, it.ID)))
}

func TestUpdate_ReverseThenReapply(t *testing.T) {
	svc, state, it := newTestService(t)

	mustCreate(t, svc, it.ID, DirectionIn, "50")
	out := mustCreate(t, svc, it.ID, DirectionOut, "20")

	// Edit the "out" to qty=5: reverse +20, reapply -5 on the 30 baseline.
	patched := *out
	patched.Quantity = decimal.RequireFromString("5")
	require.NoError(t, svc.Update(context.Background(), &patched))

	assert.True(t, decimal.RequireFromString("45").Equal(stockOf(state, it.ID)))
}

func TestDelete_RestoresBalance(t *testing.T) {
	svc, state, it := newTestService(t)

	mustCreate(t, svc, it.ID, DirectionIn, "50")
	out := mustCreate(t, svc, it.ID, DirectionOut, "20")

	patched := *out
	patched.Quantity = decimal.RequireFromString("5")
	require.NoError(t, svc.Update(context.Background(), &patched))
	require.NoError(t, svc.Delete(context.Background(), out.ID))

	assert.True(t, decimal.RequireFromString("50").Equal(stockOf(state, it.ID)))
}

func TestDelete_ExactInverseOfCreate(t *testing.T) {
	svc, state, it := newTestService(t)

	mustCreate(t, svc, it.ID, DirectionIn, "12.5")
	before := stockOf(state, it.ID)

	e := mustCreate(t, svc, it.ID, DirectionOut, "3.75")
	require.NoError(t, svc.Delete(context.Background(), e.ID))

	assert.True(t, before.Equal(stockOf(state, it.ID)))
}

func TestUpdate_EquivalentToDeleteThenCreate(t *testing.T) {
	ctx := context.Background()

	// Sequence A: edit in place.
	svcA, stateA, itA := newTestService(t)
	mustCreate(t, svcA, itA.ID, DirectionIn, "100")
	e := mustCreate(t, svcA, itA.ID, DirectionOut, "40")
	patched := *e
	patched.Direction = DirectionIn
	patched.Quantity = decimal.RequireFromString("7")
	require.NoError(t, svcA.Update(ctx, &patched))

	// Sequence B: delete the original and create the new one directly.
	svcB, stateB, itB := newTestService(t)
	mustCreate(t, svcB, itB.ID, DirectionIn, "100")
	e2 := mustCreate(t, svcB, itB.ID, DirectionOut, "40")
	require.NoError(t, svcB.Delete(ctx, e2.ID))
	mustCreate(t, svcB, itB.ID, DirectionIn, "7")

	assert.True(t, stockOf(stateA, itA.ID).Equal(stockOf(stateB, itB.ID)))
	assert.True(t, decimal.RequireFromString("107").Equal(stockOf(stateA, itA.ID)))
}

func TestUpdate_ReassignToDifferentItem(t *testing.T) {
	svc, state, first := newTestService(t)
	second := item.New("Trà ô long", "kg")
	state.items[second.ID] = second

	e := mustCreate(t, svc, first.ID, DirectionIn, "30")

	patched := *e
	patched.ItemID = second.ID
	require.NoError(t, svc.Update(context.Background(), &patched))

	assert.True(t, stockOf(state, first.ID).IsZero(), "original item should be fully reversed")
	assert.True(t, decimal.RequireFromString("30").Equal(stockOf(state, second.ID)))
}

func TestCreate_NetOfSequenceEqualsSignedSum(t *testing.T) {
	svc, state, it := newTestService(t)

	moves := []struct {
		dir Direction
		qty string
	}{
		{DirectionIn, "10"}, {DirectionIn, "2.5"}, {DirectionOut, "4"},
		{DirectionIn, "0.5"}, {DirectionOut, "1.25"},
	}

	expected := decimal.Zero
	for _, m := range moves {
		mustCreate(t, svc, it.ID, m.dir, m.qty)
		q := decimal.RequireFromString(m.qty)
		if m.dir == DirectionOut {
			q = q.Neg()
		}
		expected = expected.Add(q)
	}

	assert.True(t, expected.Equal(stockOf(state, it.ID)))
}

// --- Validation and failure semantics ---

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc, state, it := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		entry *Entry
	}{
		{"zero quantity", NewEntry(it.ID, DirectionIn, decimal.Zero, time.Now())},
		{"negative quantity", NewEntry(it.ID, DirectionOut, decimal.RequireFromString("-3"), time.Now())},
		{"unknown direction", NewEntry(it.ID, Direction("transfer"), decimal.NewFromInt(1), time.Now())},
		{"nil item", NewEntry(id.Nil(), DirectionIn, decimal.NewFromInt(1), time.Now())},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(ctx, tc.entry)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.True(t, stockOf(state, it.ID).IsZero(), "no mutation on validation error")
			assert.Empty(t, state.entries)
		})
	}
}

func TestCreate_MissingItemFailsClosed(t *testing.T) {
	svc, state, _ := newTestService(t)

	e := NewEntry(id.New(), DirectionIn, decimal.NewFromInt(5), time.Now())
	err := svc.Create(context.Background(), e)

	require.Error(t, err)
	assert.Empty(t, state.entries, "entry must not persist when the item is unknown")
}

func TestUpdate_UnknownEntry(t *testing.T) {
	svc, _, it := newTestService(t)

	ghost := NewEntry(it.ID, DirectionIn, decimal.NewFromInt(5), time.Now())
	err := svc.Update(context.Background(), ghost)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete_UnknownEntry(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Delete(context.Background(), id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

// --- Price history projection ---

func TestPriceHistory_FiltersAndOrders(t *testing.T) {
	svc, _, it := newTestService(t)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC)
	}
	price := func(s string) *decimal.Decimal {
		p := decimal.RequireFromString(s)
		return &p
	}

	older := NewEntry(it.ID, DirectionIn, decimal.NewFromInt(10), day(1))
	older.UnitPrice = price("95000")
	require.NoError(t, svc.Create(ctx, older))

	unpriced := NewEntry(it.ID, DirectionOut, decimal.NewFromInt(2), day(5))
	require.NoError(t, svc.Create(ctx, unpriced))

	newer := NewEntry(it.ID, DirectionIn, decimal.NewFromInt(4), day(9))
	newer.UnitPrice = price("98000")
	require.NoError(t, svc.Create(ctx, newer))

	points, err := svc.PriceHistory(ctx, it.ID)
	require.NoError(t, err)

	require.Len(t, points, 2, "entries without a price are excluded")
	assert.Equal(t, day(9), points[0].Date)
	assert.Equal(t, day(1), points[1].Date)
	assert.True(t, decimal.RequireFromString("98000").Equal(points[0].Price))
}

func TestPriceHistory_UnknownItem(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.PriceHistory(context.Background(), id.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreate_ComputesTotalPrice(t *testing.T) {
	svc, state, it := newTestService(t)

	p := decimal.RequireFromString("120000")
	e := NewEntry(it.ID, DirectionIn, decimal.RequireFromString("2.5"), time.Now())
	e.UnitPrice = &p
	require.NoError(t, svc.Create(context.Background(), e))

	stored := state.entries[e.ID]
	require.NotNil(t, stored.TotalPrice)
	assert.True(t, decimal.RequireFromString("300000").Equal(*stored.TotalPrice))
}
