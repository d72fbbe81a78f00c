// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

// Package provider is the HTTP client for the Aryeo photography provider API.
//
// Every call is an authenticated GET (bearer token) that passes through an
// outbound rate limiter and a circuit breaker. Non-2xx responses become
// *ProviderError values carrying the status and a short body excerpt; a
// missing token fails fast with *ConfigurationError before any network I/O.
//
// # Include Negotiation
//
// The provider's "include" query parameter is not stable across accounts and
// API versions. Get tries each include list it is given in order, moving to
// the next one only when the provider rejects the includes themselves (see
// IsIncludeRejection), and finally retries with no include parameter. Any
// other failure is returned immediately.
//
//	lists := provider.IncludeFallbacks([]string{"listing", "appointments", "images"})
//	// [[listing appointments images] [listing appointments] [listing]]
//	body, err := client.Get(ctx, "/orders", query, lists)
package provider
