// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package shoots

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/shootfolio/internal/cache"
	"github.com/tomtom215/shootfolio/internal/config"
	"github.com/tomtom215/shootfolio/internal/logging"
	"github.com/tomtom215/shootfolio/internal/metrics"
	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/normalize"
	"github.com/tomtom215/shootfolio/internal/provider"
)

// ErrShootNotFound is returned by FindShoot when neither the cache nor the
// provider knows the id.
var ErrShootNotFound = errors.New("shoot not found")

// refreshKey is the singleflight key shared by every refresh.
const refreshKey = "shoots"

// OrderSource is the subset of the provider client the manager needs.
type OrderSource interface {
	ListOrders(ctx context.Context, page, perPage int, includes []string) ([]map[string]any, error)
	GetOrder(ctx context.Context, id string, includes []string) (map[string]any, error)
}

// Options configures a Manager.
type Options struct {
	TTL            time.Duration
	PageSize       int
	MaxPages       int
	Includes       []string
	RefreshTimeout time.Duration

	// LookupCacheSize bounds the number of directly fetched orders kept for
	// FindShoot. They expire after TTL.
	LookupCacheSize int

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// OptionsFromConfig builds Options from application configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		TTL:            cfg.Cache.TTL(),
		PageSize:       cfg.Cache.PageSize,
		MaxPages:       cfg.Cache.MaxPages,
		Includes:       cfg.Provider.Includes,
		RefreshTimeout: cfg.Cache.RefreshTimeout,
	}
}

// State is the freshness of the cache.
type State string

const (
	StateEmpty State = "empty"
	StateFresh State = "fresh"
	StateStale State = "stale"
)

// Status describes the cache at one instant.
type Status struct {
	State      State
	UpdatedAt  *time.Time
	Refreshing bool
	TTL        time.Duration
}

// Fresh reports whether the cache is populated and within its TTL.
func (s Status) Fresh() bool {
	return s.State == StateFresh
}

// CacheStatus converts the status to its wire form.
func (s Status) CacheStatus() models.CacheStatus {
	return models.CacheStatus{
		UpdatedAt:  s.UpdatedAt,
		Fresh:      s.Fresh(),
		Refreshing: s.Refreshing,
		TTLSeconds: int64(s.TTL / time.Second),
	}
}

// Manager owns the shoots cache and its refresh policy.
type Manager struct {
	source OrderSource
	store  *SnapshotStore
	opts   Options
	now    func() time.Time

	mu    sync.RWMutex
	cache models.ShootsCache

	lookups *cache.LRU[models.Shoot]

	group      singleflight.Group
	refreshing atomic.Bool

	// baseCtx parents every refresh so Close can cancel in-flight fetches.
	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewManager creates a Manager. store may be nil to disable persistence.
func NewManager(source OrderSource, store *SnapshotStore, opts Options) *Manager {
	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = 2 * time.Minute
	}
	if opts.LookupCacheSize <= 0 {
		opts.LookupCacheSize = 256
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	lookups := cache.NewLRU[models.Shoot](opts.LookupCacheSize, opts.TTL)
	lookups.SetClock(now)

	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		source:  source,
		store:   store,
		opts:    opts,
		now:     now,
		lookups: lookups,
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// LoadSnapshot seeds the cache from disk. A missing or corrupt snapshot is
// ignored; the next successful refresh rebuilds it. Reports whether a
// snapshot was loaded.
func (m *Manager) LoadSnapshot() bool {
	if m.store == nil {
		return false
	}

	log := logging.WithComponent("shoots")
	cache, err := m.store.Load()
	switch {
	case errors.Is(err, ErrNoSnapshot):
		return false
	case err != nil:
		log.Warn().Err(err).Str("path", m.store.Path()).Msg("Ignoring unreadable cache snapshot")
		return false
	}

	m.mu.Lock()
	m.cache = cache
	m.mu.Unlock()
	metrics.CacheShoots.Set(float64(len(cache.Shoots)))

	log.Info().
		Int("shoots", len(cache.Shoots)).
		Str("path", m.store.Path()).
		Msg("Loaded cache snapshot")
	return true
}

// Snapshot returns the current cache. The returned value must not be mutated.
func (m *Manager) Snapshot() models.ShootsCache {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache
}

// Status reports the current freshness and whether a refresh is running.
func (m *Manager) Status() Status {
	st := m.statusOf(m.Snapshot())
	st.Refreshing = m.refreshing.Load()
	return st
}

func (m *Manager) statusOf(cache models.ShootsCache) Status {
	st := Status{State: StateEmpty, UpdatedAt: cache.UpdatedAt, TTL: m.opts.TTL}
	if !cache.Populated() {
		return st
	}
	if m.now().Sub(*cache.UpdatedAt) > m.opts.TTL {
		st.State = StateStale
	} else {
		st.State = StateFresh
	}
	return st
}

// Shoots returns the cache according to the refresh policy. An error is
// returned only when the cache was empty and the synchronous refresh failed.
// Every returned shoot has been re-sanitized.
func (m *Manager) Shoots(ctx context.Context, force bool) (models.ShootsCache, Status, error) {
	cache := m.Snapshot()
	st := m.statusOf(cache)
	st.Refreshing = m.refreshing.Load()

	switch {
	case st.State == StateEmpty:
		metrics.RecordCacheRead("cold")
		if err := m.Refresh(ctx); err != nil {
			return models.ShootsCache{}, m.Status(), err
		}
		cache = m.Snapshot()
		st = m.statusOf(cache)
		st.Refreshing = m.refreshing.Load()
	case force:
		metrics.RecordCacheRead("forced")
		m.TriggerRefresh()
		st.Refreshing = true
	case st.State == StateStale:
		metrics.RecordCacheRead("stale")
		m.TriggerRefresh()
		st.Refreshing = true
	default:
		metrics.RecordCacheRead("fresh")
	}

	return sanitizeCache(cache), st, nil
}

// sanitizeCache re-applies photo/thumbnail cleanup so snapshots written by
// older builds are served in the current shape.
func sanitizeCache(cache models.ShootsCache) models.ShootsCache {
	out := cache
	out.Shoots = make([]models.Shoot, len(cache.Shoots))
	for i := range cache.Shoots {
		out.Shoots[i] = normalize.Sanitize(cache.Shoots[i])
	}
	return out
}

// Refresh runs a refresh, or joins the one in flight, and waits for it.
// ctx bounds only the wait; the refresh itself continues if ctx ends.
func (m *Manager) Refresh(ctx context.Context) error {
	ch := m.startRefresh()
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TriggerRefresh starts a refresh in the background unless one is running
// or the manager is closed.
func (m *Manager) TriggerRefresh() {
	if m.baseCtx.Err() != nil {
		return
	}
	ch := m.startRefresh()
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		<-ch
	}()
}

// RefreshIfStale triggers a background refresh when the cache is empty or
// stale. Reports whether one was triggered.
func (m *Manager) RefreshIfStale() bool {
	if m.Status().Fresh() {
		return false
	}
	m.TriggerRefresh()
	return true
}

func (m *Manager) startRefresh() <-chan singleflight.Result {
	return m.group.DoChan(refreshKey, func() (any, error) {
		m.refreshing.Store(true)
		defer m.refreshing.Store(false)

		ctx, cancel := context.WithTimeout(m.baseCtx, m.opts.RefreshTimeout)
		defer cancel()
		return nil, m.refresh(logging.ContextWithNewCorrelationID(ctx))
	})
}

// refresh fetches everything and swaps the cache in on success.
func (m *Manager) refresh(ctx context.Context) error {
	start := time.Now()
	log := logging.Ctx(ctx).With().Str("component", "shoots").Logger()

	next, err := m.fetchAll(ctx)
	if err != nil {
		metrics.RecordCacheRefresh(time.Since(start), 0, err)
		log.Error().Err(err).Msg("Cache refresh failed, keeping previous cache")
		return err
	}

	m.mu.Lock()
	m.cache = next
	m.mu.Unlock()

	if m.store != nil {
		saveErr := m.store.Save(next)
		metrics.RecordSnapshotWrite(saveErr)
		if saveErr != nil {
			log.Warn().Err(saveErr).Str("path", m.store.Path()).Msg("Failed to persist cache snapshot")
		}
	}

	metrics.RecordCacheRefresh(time.Since(start), len(next.Shoots), nil)
	log.Info().
		Int("shoots", len(next.Shoots)).
		Int("source_count", next.SourceCount).
		Dur("duration", time.Since(start)).
		Msg("Cache refreshed")
	return nil
}

// FindShoot looks id up in the cache, then among recent direct lookups,
// falling back to a direct provider fetch. A stale or empty cache also gets
// a background refresh.
func (m *Manager) FindShoot(ctx context.Context, id string) (models.Shoot, error) {
	m.RefreshIfStale()

	cache := m.Snapshot()
	for i := range cache.Shoots {
		if cache.Shoots[i].ID == id {
			metrics.RecordCacheRead("hit")
			return normalize.Sanitize(cache.Shoots[i]), nil
		}
	}

	if shoot, ok := m.lookups.Get(id); ok {
		metrics.RecordCacheRead("lookup_hit")
		return normalize.Sanitize(shoot), nil
	}

	metrics.RecordCacheRead("miss")
	record, err := m.source.GetOrder(ctx, id, m.opts.Includes)
	if err != nil {
		if provider.IsNotFound(err) {
			return models.Shoot{}, fmt.Errorf("order %s: %w", id, ErrShootNotFound)
		}
		return models.Shoot{}, err
	}

	shoot := normalize.Normalize(record)
	m.lookups.Add(id, shoot)
	return normalize.Sanitize(shoot), nil
}

// Close cancels in-flight refreshes and waits for background work to end.
func (m *Manager) Close() {
	m.cancel()
	m.wg.Wait()
}
