// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package services

import (
	"context"
	"time"

	"github.com/tomtom215/shootfolio/internal/logging"
)

// CacheWarmer starts a background refresh when the cache is empty or stale
// and reports whether it did. *shoots.Manager satisfies it.
type CacheWarmer interface {
	RefreshIfStale() bool
}

// CacheWarmerService periodically warms the shoot cache.
type CacheWarmerService struct {
	warmer   CacheWarmer
	interval time.Duration
	name     string
}

// NewCacheWarmerService creates the service. An interval of zero or less
// warms once on start and then idles until shutdown.
func NewCacheWarmerService(warmer CacheWarmer, interval time.Duration) *CacheWarmerService {
	return &CacheWarmerService{
		warmer:   warmer,
		interval: interval,
		name:     "cache-warmer",
	}
}

// Serve implements suture.Service.
func (c *CacheWarmerService) Serve(ctx context.Context) error {
	log := logging.WithComponent(c.name)

	if c.warmer.RefreshIfStale() {
		log.Info().Msg("Warming shoot cache on start")
	}

	if c.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.warmer.RefreshIfStale() {
				log.Debug().Dur("interval", c.interval).Msg("Shoot cache stale, refresh started")
			}
		}
	}
}

// String names the service in supervisor events.
func (c *CacheWarmerService) String() string {
	return c.name
}
