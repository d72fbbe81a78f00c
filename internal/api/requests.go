// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package api

// Query parameter bounds.
const (
	defaultShootsLimit = 24
	maxShootsLimit     = 100

	defaultLeadsLimit = 200
	maxLeadsLimit     = 1000

	// maxWebhookBody bounds inbound webhook payloads.
	maxWebhookBody = 1 << 20
)

// orderQuery is the query of /api/shoot and /api/order-status.
type orderQuery struct {
	OrderID string `query:"order_id" validate:"required,orderid"`
}
