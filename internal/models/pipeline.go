// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// PipelineEvent is one inbound webhook delivery as recorded in the pipeline log.
// Raw keeps the original request body for replay.
type PipelineEvent struct {
	ReceivedAt time.Time       `json:"received_at"`
	EventType  string          `json:"event_type"`
	OrderID    string          `json:"order_id"`
	Status     string          `json:"status"`
	Address    string          `json:"address"`
	Raw        json.RawMessage `json:"raw"`
}

// PipelineEntry is a single line read back from the pipeline log.
//
// A line that could not be decoded is returned with ParseError set and the
// original text in Line, so one bad line never hides the rest of the log.
type PipelineEntry struct {
	*PipelineEvent
	ParseError bool   `json:"parse_error,omitempty"`
	Line       string `json:"line,omitempty"`
}

// PipelineLeadsResponse is the body of GET /api/pipeline/leads.
type PipelineLeadsResponse struct {
	Events []PipelineEntry `json:"events"`
	Count  int             `json:"count"`
}
