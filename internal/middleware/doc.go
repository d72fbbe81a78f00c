// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package middleware provides HTTP middleware shared by the API router.

PrometheusMetrics instruments every /api request with the collectors from
the metrics package. It is written against http.HandlerFunc and adapted to
chi's func(http.Handler) http.Handler form by the api package:

	r.Route("/api", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    ...
	})
*/
package middleware
