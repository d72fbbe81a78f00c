// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package models

// ErrorResponse is the body returned by every endpoint on failure.
//
//	{"error": "order_id is required"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// WebhookAck acknowledges an accepted webhook delivery.
type WebhookAck struct {
	OK bool `json:"ok"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	OK       bool   `json:"ok"`
	APIBase  string `json:"api_base"`
	HasToken bool   `json:"has_token"`
}
