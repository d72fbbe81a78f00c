// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package services adapts Shootfolio components to suture's Serve(ctx) model.

HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded drain timeout.

CacheWarmerService keeps the shoot cache warm. It refreshes once on start
when the cache is empty or stale, then re-checks staleness on an interval.
Refreshes are single-flight inside the cache manager, so a warm tick that
coincides with a request-triggered refresh joins it rather than fetching
twice.
*/
package services
