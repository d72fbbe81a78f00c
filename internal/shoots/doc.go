// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

// Package shoots maintains the in-memory cache of normalized shoots.
//
// A refresh pages through the provider's order listing, normalizes every
// record, dedupes by id (later pages win) and sorts newest activity first.
// The finished snapshot replaces the cache wholesale and is persisted to disk;
// readers never observe a partial page set.
//
// # Refresh Policy
//
//   - Empty cache: the reader waits for a refresh.
//   - Stale cache (age > TTL): the reader gets current data and a refresh
//     starts in the background.
//   - Fresh cache: served as is.
//   - Forced: like stale, regardless of age.
//
// At most one refresh runs at a time (singleflight). A failed refresh keeps
// the previous cache and is only logged. Each refresh runs on a context
// detached from the triggering request and bounded by the refresh timeout.
package shoots
