// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

// Package logging provides centralized zerolog-based structured logging for Shootfolio.
//
// A single global logger is configured once at startup from the logging
// section of the configuration and used by every package:
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//	logging.Info().Str("shoot_id", id).Msg("Shoot served from cache")
//
// # Request Context
//
// HTTP middleware stores a request ID in the request context; background
// refreshes attach a short correlation ID. Ctx(ctx) returns a logger carrying
// whichever of the two are present:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Provider request failed")
//
// # slog Bridge
//
// Libraries that log through log/slog (the suture supervisor tree via
// sutureslog) are bridged with NewSlogLogger so all output shares one format.
//
// # Sanitization
//
// Values that originate from callers or webhook payloads go through
// SanitizeValue before being logged. Secrets are masked with SanitizeSecret.
package logging
