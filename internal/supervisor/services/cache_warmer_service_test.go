// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/shootfolio/internal/shoots"
)

// fakeWarmer reports stale for the first staleFor calls.
type fakeWarmer struct {
	calls    atomic.Int32
	staleFor int32
}

func (f *fakeWarmer) RefreshIfStale() bool {
	return f.calls.Add(1) <= f.staleFor
}

func TestCacheWarmerService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheWarmerService)(nil)
	var _ fmt.Stringer = (*CacheWarmerService)(nil)
	var _ CacheWarmer = (*shoots.Manager)(nil)
}

func TestCacheWarmerService_WarmsOnStartAndOnInterval(t *testing.T) {
	t.Parallel()

	w := &fakeWarmer{staleFor: 1}
	svc := NewCacheWarmerService(w, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for w.calls.Load() < 4 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if got := w.calls.Load(); got < 4 {
		t.Errorf("RefreshIfStale calls = %d, want >= 4", got)
	}
}

func TestCacheWarmerService_ZeroIntervalWarmsOnce(t *testing.T) {
	t.Parallel()

	w := &fakeWarmer{staleFor: 1}
	svc := NewCacheWarmerService(w, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := w.calls.Load(); got != 1 {
		t.Errorf("RefreshIfStale calls = %d, want 1", got)
	}
}

func TestCacheWarmerService_String(t *testing.T) {
	t.Parallel()

	if got := NewCacheWarmerService(&fakeWarmer{}, time.Minute).String(); got != "cache-warmer" {
		t.Errorf("String() = %q, want cache-warmer", got)
	}
}
