// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator caches struct metadata and carries the
// custom "orderid" rule used for provider order identifiers. Field names in
// messages come from `query` or `json` tags, so a missing parameter reads the
// way the caller spelled it:
//
//	type orderQuery struct {
//	    OrderID string `query:"order_id" validate:"required,orderid"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    // verr.Error() == "order_id is required"
//	}
package validation
