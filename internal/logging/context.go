// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type traceKey struct{}

// trace is the pair of identifiers carried through a request or a refresh.
// A request gets both; a background refresh gets only a correlation id.
type trace struct {
	requestID     string
	correlationID string
}

func traceFrom(ctx context.Context) trace {
	t, _ := ctx.Value(traceKey{}).(trace)
	return t
}

// GenerateCorrelationID returns a short id (8 hex characters).
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithCorrelationID returns ctx carrying correlation id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	t := traceFrom(ctx)
	t.correlationID = id
	return context.WithValue(ctx, traceKey{}, t)
}

// ContextWithNewCorrelationID returns ctx carrying a fresh correlation id.
// Cache refreshes use it to tie their page fetches together.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation id, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return traceFrom(ctx).correlationID
}

// ContextWithRequestID returns ctx carrying request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	t := traceFrom(ctx)
	t.requestID = id
	return context.WithValue(ctx, traceKey{}, t)
}

// RequestIDFromContext returns the request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	return traceFrom(ctx).requestID
}

// Ctx returns the global logger with request_id and correlation_id from ctx.
//
//	logging.Ctx(r.Context()).Debug().Str("order_id", id).Msg("Shoot lookup")
func Ctx(ctx context.Context) *zerolog.Logger {
	t := traceFrom(ctx)
	logCtx := Logger().With()
	if t.correlationID != "" {
		logCtx = logCtx.Str("correlation_id", t.correlationID)
	}
	if t.requestID != "" {
		logCtx = logCtx.Str("request_id", t.requestID)
	}
	logger := logCtx.Logger()
	return &logger
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
