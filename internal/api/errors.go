// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/shootfolio/internal/provider"
	"github.com/tomtom215/shootfolio/internal/shoots"
)

// Common API errors
var (
	// ErrInvalidWebhookSecret is returned when x-webhook-secret does not match.
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret")

)

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	var perr *provider.ProviderError
	switch {
	case errors.Is(err, shoots.ErrShootNotFound), provider.IsNotFound(err):
		return http.StatusNotFound
	case provider.IsConfigurationError(err), provider.IsUnavailable(err):
		return http.StatusServiceUnavailable
	case errors.As(err, &perr):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// messageForError is the client-facing text for err. Unclassified errors are
// not echoed back.
func messageForError(status int, err error) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
