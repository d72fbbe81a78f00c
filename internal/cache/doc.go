// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package cache provides a thread-safe, capacity-bounded LRU with per-entry TTL.

The shoot manager uses it to remember orders fetched directly from the
provider (lookups for orders outside the cached listing), so repeated
/api/shoot and /api/order-status requests for the same order do not each
cost a provider round trip.

	lookups := cache.NewLRU[models.Shoot](256, 10*time.Minute)
	lookups.Add(id, shoot)
	if s, ok := lookups.Get(id); ok {
	    return s, nil
	}

Expiry is lazy: expired entries are dropped when read or by CleanupExpired.
*/
package cache
