// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package shoots

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/provider"
)

var errUpstream = errors.New("upstream exploded")

// fakeSource serves canned pages. When gate is set, ListOrders blocks until
// the gate is closed; started receives one signal per ListOrders call.
type fakeSource struct {
	pages   [][]map[string]any
	orders  map[string]map[string]any
	listErr error
	gate    chan struct{}
	started chan struct{}

	listCalls  atomic.Int32
	orderCalls atomic.Int32
}

func (f *fakeSource) ListOrders(ctx context.Context, page, _ int, _ []string) ([]map[string]any, error) {
	f.listCalls.Add(1)
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	if page-1 < len(f.pages) {
		return f.pages[page-1], nil
	}
	return nil, nil
}

func (f *fakeSource) GetOrder(_ context.Context, id string, _ []string) (map[string]any, error) {
	f.orderCalls.Add(1)
	if rec, ok := f.orders[id]; ok {
		return rec, nil
	}
	return nil, &provider.ProviderError{Path: "/orders/" + id, StatusCode: 404, Body: "Not found"}
}

func order(id, scheduledAt string) map[string]any {
	rec := map[string]any{"id": id, "status": "COMPLETED"}
	if scheduledAt != "" {
		rec["scheduled_at"] = scheduledAt
	}
	return rec
}

func newTestManager(t *testing.T, src OrderSource, store *SnapshotStore, opts Options) *Manager {
	t.Helper()
	if opts.TTL == 0 {
		opts.TTL = time.Hour
	}
	if opts.PageSize == 0 {
		opts.PageSize = 50
	}
	if opts.MaxPages == 0 {
		opts.MaxPages = 5
	}
	m := NewManager(src, store, opts)
	t.Cleanup(m.Close)
	return m
}

func setCache(m *Manager, updatedAt time.Time, shoots ...models.Shoot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = models.ShootsCache{UpdatedAt: &updatedAt, Shoots: shoots, SourceCount: len(shoots)}
}

func ids(shoots []models.Shoot) []string {
	out := make([]string, len(shoots))
	for i := range shoots {
		out[i] = shoots[i].ID
	}
	return out
}

func TestStatus_TTLBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 6 * time.Hour

	tests := []struct {
		name      string
		age       time.Duration
		wantState State
	}{
		{"just inside ttl", ttl - time.Second, StateFresh},
		{"exactly ttl", ttl, StateFresh},
		{"just past ttl", ttl + time.Second, StateStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestManager(t, &fakeSource{}, nil, Options{TTL: ttl, Now: func() time.Time { return now }})
			setCache(m, now.Add(-tt.age))

			st := m.Status()
			if st.State != tt.wantState {
				t.Errorf("State = %s, want %s", st.State, tt.wantState)
			}
			wire := st.CacheStatus()
			if wire.Fresh != (tt.wantState == StateFresh) {
				t.Errorf("CacheStatus().Fresh = %v", wire.Fresh)
			}
			if wire.TTLSeconds != int64(ttl/time.Second) {
				t.Errorf("TTLSeconds = %d", wire.TTLSeconds)
			}
		})
	}
}

func TestStatus_Empty(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, &fakeSource{}, nil, Options{})
	st := m.Status()
	if st.State != StateEmpty || st.Fresh() || st.UpdatedAt != nil {
		t.Errorf("empty manager status = %+v", st)
	}
}

func TestShoots_ColdCacheWaitsAndSorts(t *testing.T) {
	t.Parallel()

	src := &fakeSource{pages: [][]map[string]any{{
		order("A", "2026-01-01T10:00:00Z"),
		order("B", "2026-02-01T10:00:00Z"),
	}}}
	m := newTestManager(t, src, nil, Options{})

	cache, st, err := m.Shoots(context.Background(), false)
	if err != nil {
		t.Fatalf("Shoots() error = %v", err)
	}
	if got := ids(cache.Shoots); len(got) != 2 || got[0] != "B" || got[1] != "A" {
		t.Errorf("shoot order = %v, want [B A]", got)
	}
	if cache.SourceCount != 2 {
		t.Errorf("SourceCount = %d, want 2", cache.SourceCount)
	}
	if st.State != StateFresh {
		t.Errorf("State = %s, want fresh", st.State)
	}
	if src.listCalls.Load() != 1 {
		t.Errorf("ListOrders calls = %d, want 1", src.listCalls.Load())
	}
}

func TestShoots_ColdFailureReturnsError(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, &fakeSource{listErr: errUpstream}, nil, Options{})

	_, st, err := m.Shoots(context.Background(), false)
	if !errors.Is(err, errUpstream) {
		t.Fatalf("Shoots() error = %v, want errUpstream", err)
	}
	if st.State != StateEmpty {
		t.Errorf("State = %s, want empty", st.State)
	}
}

func TestShoots_FreshServedWithoutRefresh(t *testing.T) {
	t.Parallel()

	now := time.Now()
	src := &fakeSource{}
	m := newTestManager(t, src, nil, Options{Now: func() time.Time { return now }})
	setCache(m, now.Add(-time.Minute), models.Shoot{ID: "X"})

	cache, st, err := m.Shoots(context.Background(), false)
	if err != nil {
		t.Fatalf("Shoots() error = %v", err)
	}
	if len(cache.Shoots) != 1 || st.Refreshing {
		t.Errorf("cache = %v, refreshing = %v", ids(cache.Shoots), st.Refreshing)
	}
	m.wg.Wait()
	if src.listCalls.Load() != 0 {
		t.Errorf("fresh read should not fetch, got %d calls", src.listCalls.Load())
	}
}

func TestShoots_StaleServedImmediately(t *testing.T) {
	t.Parallel()

	now := time.Now()
	src := &fakeSource{
		pages:   [][]map[string]any{{order("NEW", "")}},
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	m := newTestManager(t, src, nil, Options{TTL: time.Minute, Now: func() time.Time { return now }})
	setCache(m, now.Add(-time.Hour), models.Shoot{ID: "OLD"})

	cache, st, err := m.Shoots(context.Background(), false)
	if err != nil {
		t.Fatalf("Shoots() error = %v", err)
	}
	if got := ids(cache.Shoots); len(got) != 1 || got[0] != "OLD" {
		t.Errorf("stale read returned %v, want [OLD]", got)
	}
	if st.State != StateStale || !st.Refreshing {
		t.Errorf("status = %+v, want stale and refreshing", st)
	}

	<-src.started
	close(src.gate)
	m.wg.Wait()

	if got := ids(m.Snapshot().Shoots); len(got) != 1 || got[0] != "NEW" {
		t.Errorf("after refresh cache = %v, want [NEW]", got)
	}
}

func TestShoots_ForceRefreshDoesNotWait(t *testing.T) {
	t.Parallel()

	now := time.Now()
	src := &fakeSource{
		pages:   [][]map[string]any{{order("NEW", "")}},
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	m := newTestManager(t, src, nil, Options{Now: func() time.Time { return now }})
	setCache(m, now, models.Shoot{ID: "CURRENT"})

	cache, st, err := m.Shoots(context.Background(), true)
	if err != nil {
		t.Fatalf("Shoots() error = %v", err)
	}
	if got := ids(cache.Shoots); got[0] != "CURRENT" || !st.Refreshing {
		t.Errorf("forced read = %v refreshing=%v", got, st.Refreshing)
	}

	<-src.started
	close(src.gate)
	m.wg.Wait()
	if src.listCalls.Load() != 1 {
		t.Errorf("ListOrders calls = %d, want 1", src.listCalls.Load())
	}
}

func TestRefresh_SingleFlight(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		pages:   [][]map[string]any{{order("A", "")}},
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	m := newTestManager(t, src, nil, Options{})

	ctx := context.Background()
	var wg sync.WaitGroup
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = m.Refresh(ctx)
	}()
	<-src.started

	if !m.Status().Refreshing {
		t.Error("Status().Refreshing = false during refresh")
	}

	// both attach to the in-flight refresh before it is released
	joined := m.startRefresh()
	m.TriggerRefresh()

	close(src.gate)
	wg.Wait()
	res := <-joined
	m.wg.Wait()

	if firstErr != nil || res.Err != nil {
		t.Errorf("refresh errors = %v, %v", firstErr, res.Err)
	}
	if !res.Shared {
		t.Error("second caller did not share the in-flight refresh")
	}
	if got := src.listCalls.Load(); got != 1 {
		t.Errorf("ListOrders calls = %d, want exactly 1", got)
	}
	if m.Status().Refreshing {
		t.Error("Status().Refreshing = true after refresh completed")
	}
}

func TestRefresh_FailureKeepsPreviousCache(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := newTestManager(t, &fakeSource{listErr: errUpstream}, nil, Options{Now: func() time.Time { return now }})
	setCache(m, now.Add(-2*time.Hour), models.Shoot{ID: "KEEP"})

	if err := m.Refresh(context.Background()); !errors.Is(err, errUpstream) {
		t.Fatalf("Refresh() error = %v, want errUpstream", err)
	}

	cache := m.Snapshot()
	if got := ids(cache.Shoots); len(got) != 1 || got[0] != "KEEP" {
		t.Errorf("cache after failed refresh = %v, want [KEEP]", got)
	}
	if !cache.UpdatedAt.Equal(now.Add(-2 * time.Hour)) {
		t.Errorf("UpdatedAt changed to %v", cache.UpdatedAt)
	}
}

func TestShoots_SanitizesCachedData(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := newTestManager(t, &fakeSource{}, nil, Options{Now: func() time.Time { return now }})
	setCache(m, now, models.Shoot{
		ID:           "LEGACY",
		ThumbnailURL: "https://cdn.example.com/a/front.jpg",
		Photos: []string{
			"https://cdn.example.com/a/front-1024x768.jpg",
			"https://cdn.example.com/a/kitchen.jpg",
		},
	})

	cache, _, err := m.Shoots(context.Background(), false)
	if err != nil {
		t.Fatalf("Shoots() error = %v", err)
	}
	photos := cache.Shoots[0].Photos
	if len(photos) != 1 || photos[0] != "https://cdn.example.com/a/kitchen.jpg" {
		t.Errorf("photos = %v, want thumbnail variant removed", photos)
	}
	if raw := m.Snapshot().Shoots[0].Photos; len(raw) != 2 {
		t.Errorf("sanitizing a read mutated the cache: %v", raw)
	}
}

func TestFindShoot(t *testing.T) {
	t.Parallel()

	now := time.Now()
	src := &fakeSource{orders: map[string]map[string]any{"REMOTE": order("REMOTE", "")}}
	m := newTestManager(t, src, nil, Options{Now: func() time.Time { return now }})
	setCache(m, now, models.Shoot{ID: "CACHED", Status: "Delivered"})
	ctx := context.Background()

	shoot, err := m.FindShoot(ctx, "CACHED")
	if err != nil || shoot.Status != "Delivered" {
		t.Fatalf("FindShoot(CACHED) = %+v, %v", shoot, err)
	}
	if src.orderCalls.Load() != 0 {
		t.Error("cache hit should not call the provider")
	}

	shoot, err = m.FindShoot(ctx, "REMOTE")
	if err != nil || shoot.ID != "REMOTE" {
		t.Fatalf("FindShoot(REMOTE) = %+v, %v", shoot, err)
	}

	if _, err := m.FindShoot(ctx, "NOPE"); !errors.Is(err, ErrShootNotFound) {
		t.Errorf("FindShoot(NOPE) error = %v, want ErrShootNotFound", err)
	}
}

func TestFindShoot_RemembersDirectLookups(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	src := &fakeSource{orders: map[string]map[string]any{"OLD": order("OLD", "")}}
	m := newTestManager(t, src, nil, Options{TTL: time.Hour, Now: clock})
	setCache(m, now)
	ctx := context.Background()

	for range 3 {
		if _, err := m.FindShoot(ctx, "OLD"); err != nil {
			t.Fatalf("FindShoot(OLD): %v", err)
		}
	}
	if got := src.orderCalls.Load(); got != 1 {
		t.Errorf("provider order calls = %d, want 1", got)
	}

	// Not-found answers are not remembered.
	for range 2 {
		_, _ = m.FindShoot(ctx, "NOPE")
	}
	if got := src.orderCalls.Load(); got != 3 {
		t.Errorf("provider order calls = %d, want 3", got)
	}

	mu.Lock()
	now = now.Add(time.Hour + time.Second)
	mu.Unlock()
	setCache(m, clock())
	if _, err := m.FindShoot(ctx, "OLD"); err != nil {
		t.Fatalf("FindShoot(OLD) after expiry: %v", err)
	}
	if got := src.orderCalls.Load(); got != 4 {
		t.Errorf("provider order calls after expiry = %d, want 4", got)
	}
}

func TestFetchAll_PaginationAndDedupe(t *testing.T) {
	t.Parallel()

	updated := order("B", "")
	updated["status"] = "Updated"

	src := &fakeSource{pages: [][]map[string]any{
		{order("A", ""), order("B", "")},
		{updated, order("C", "")},
	}}
	m := newTestManager(t, src, nil, Options{PageSize: 2, MaxPages: 10})

	cache, err := m.fetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetchAll() error = %v", err)
	}

	// page 2 was full, so page 3 (empty) is requested and ends the loop
	if got := src.listCalls.Load(); got != 3 {
		t.Errorf("ListOrders calls = %d, want 3", got)
	}
	if cache.SourceCount != 4 {
		t.Errorf("SourceCount = %d, want 4", cache.SourceCount)
	}
	if got := ids(cache.Shoots); len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Errorf("ids = %v, want [A B C] (no timestamps keeps fetch order)", got)
	}
	if cache.Shoots[1].Status != "Updated" {
		t.Errorf("later page should win on id collision, status = %q", cache.Shoots[1].Status)
	}
}

func TestFetchAll_PageCapAndShortPage(t *testing.T) {
	t.Parallel()

	full := &fakeSource{pages: [][]map[string]any{{order("1", "")}, {order("2", "")}, {order("3", "")}}}
	m := newTestManager(t, full, nil, Options{PageSize: 1, MaxPages: 2})
	if _, err := m.fetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := full.listCalls.Load(); got != 2 {
		t.Errorf("page cap: ListOrders calls = %d, want 2", got)
	}

	short := &fakeSource{pages: [][]map[string]any{{order("1", "")}}}
	m = newTestManager(t, short, nil, Options{PageSize: 10, MaxPages: 5})
	if _, err := m.fetchAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := short.listCalls.Load(); got != 1 {
		t.Errorf("short page: ListOrders calls = %d, want 1", got)
	}
}

func TestRefresh_PersistsSnapshot(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore(filepath.Join(t.TempDir(), "nested", "shoots-cache.json"))
	src := &fakeSource{pages: [][]map[string]any{{order("A", "2026-01-01T00:00:00Z")}}}

	m := newTestManager(t, src, store, Options{})
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	reloaded := newTestManager(t, &fakeSource{}, store, Options{})
	if !reloaded.LoadSnapshot() {
		t.Fatal("LoadSnapshot() = false after a successful refresh")
	}
	got := reloaded.Snapshot()
	if len(got.Shoots) != 1 || got.Shoots[0].ID != "A" || !got.Populated() {
		t.Errorf("reloaded cache = %+v", got)
	}
}
