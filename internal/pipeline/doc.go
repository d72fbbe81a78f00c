// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

// Package pipeline records inbound provider webhooks as an append-only
// newline-delimited JSON log and reads them back newest first.
//
// Each Append writes exactly one line with a single write call on a file
// opened with O_APPEND, under a process-wide mutex, so concurrent deliveries
// never interleave partial lines. Read tolerates damage: a line that does not
// decode comes back as an entry with ParseError set instead of failing the
// whole read.
package pipeline
