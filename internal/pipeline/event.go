// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package pipeline

import (
	"bytes"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/normalize"
)

// UnknownEventType is recorded when a delivery names no event.
const UnknownEventType = "unknown"

var (
	// orderKeys name the envelope fields that may hold the order-like payload.
	orderKeys = []string{"order", "resource", "data", "payload", "object"}

	eventTypeKeys = []string{"event", "type", "event_type", "name"}

	orderIDKeys = []string{"order_id", "orderId"}
)

// EventFromWebhook converts a decoded webhook body into a pipeline event.
// raw is stored compacted; if it is not valid JSON it is stored as a JSON
// string so the log line stays decodable.
func EventFromWebhook(payload map[string]any, raw []byte, now time.Time) models.PipelineEvent {
	order := orderPayload(payload)

	ev := models.PipelineEvent{
		ReceivedAt: now.UTC(),
		EventType:  eventType(payload),
		OrderID:    normalize.Identifier(order["id"]),
		Status:     normalize.Status(order),
		Address:    normalize.ResolveAddress(order),
		Raw:        compactRaw(raw),
	}

	if ev.OrderID == "" {
		for _, key := range orderIDKeys {
			if id := normalize.Identifier(payload[key]); id != "" {
				ev.OrderID = id
				break
			}
		}
	}
	return ev
}

// orderPayload finds the embedded order: the first envelope key holding an
// object, followed one level further when that object is itself an envelope
// (for example data.object) and carries no id of its own. Falls back to the
// payload itself.
func orderPayload(payload map[string]any) map[string]any {
	current := payload
	for depth := 0; depth < 2; depth++ {
		if _, hasID := current["id"]; hasID && depth > 0 {
			break
		}
		next := envelopeChild(current)
		if next == nil {
			break
		}
		current = next
	}
	return current
}

func envelopeChild(obj map[string]any) map[string]any {
	for _, key := range orderKeys {
		if child, ok := obj[key].(map[string]any); ok && len(child) > 0 {
			return child
		}
	}
	return nil
}

func eventType(payload map[string]any) string {
	for _, key := range eventTypeKeys {
		if s, ok := payload[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return UnknownEventType
}

func compactRaw(raw []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return json.RawMessage(buf.Bytes())
	}
	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return json.RawMessage("null")
	}
	return json.RawMessage(quoted)
}
