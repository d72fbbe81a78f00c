// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

// Package api exposes the shoot portfolio over HTTP using the Chi router.
//
// # Routes
//
//	GET  /api/health             {ok, api_base, has_token}
//	GET  /api/shoots             ?limit=1..100 (24) &refresh=1
//	GET  /api/shoot              ?order_id=ID
//	GET  /api/order-status       ?order_id=ID
//	POST /api/webhooks/aryeo     x-webhook-secret header when configured
//	GET  /api/pipeline/leads     ?limit=1..1000 (200)
//	GET  /metrics                Prometheus exposition
//
// # Middleware
//
// Every request gets a request ID (X-Request-ID, also attached to the logging
// context), real-IP extraction, JSON panic recovery and CORS. API routes add
// security headers, Prometheus instrumentation and per-IP rate limits
// (go-chi/httprate); the webhook route has its own limit.
//
// # Errors
//
// All errors are written as {"error": message}. Missing parameters and bad
// webhook bodies are 400, a wrong webhook secret is 401, an unknown order is
// 404, a missing provider token or open circuit breaker is 503, any other
// provider failure is 502, and everything else is 500.
package api
