// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package normalize

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// timeLayouts are tried in order when parsing provider timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

var (
	appointmentKeys     = []string{"appointments", "appointment", "events"}
	appointmentTimeKeys = []string{"start_at", "start", "starts_at", "start_time", "scheduled_at", "date"}
	recordTimeKeys      = []string{"scheduled_at", "appointment_at", "shoot_date", "created_at"}
)

// ParseTime converts a timestamp value to UTC. Strings are parsed with the
// supported layouts and numbers are treated as Unix seconds. It returns nil
// for anything else.
func ParseTime(v any) *time.Time {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				parsed = parsed.UTC()
				return &parsed
			}
		}
	case json.Number:
		if secs, err := t.Int64(); err == nil && secs > 0 {
			parsed := time.Unix(secs, 0).UTC()
			return &parsed
		}
	case float64:
		if t > 0 {
			parsed := time.Unix(int64(t), 0).UTC()
			return &parsed
		}
	}
	return nil
}

// ResolveScheduledAt returns the first appointment start, then a record-level
// scheduled time, then created_at.
func ResolveScheduledAt(record map[string]any) *time.Time {
	if appt := firstAppointment(record); appt != nil {
		for _, key := range appointmentTimeKeys {
			if ts := ParseTime(appt[key]); ts != nil {
				return ts
			}
		}
	}
	for _, key := range recordTimeKeys {
		if ts := ParseTime(record[key]); ts != nil {
			return ts
		}
	}
	return nil
}

func firstAppointment(record map[string]any) map[string]any {
	for _, key := range appointmentKeys {
		switch v := record[key].(type) {
		case map[string]any:
			return v
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					return m
				}
			}
		}
	}
	if listing, ok := record["listing"].(map[string]any); ok {
		if appts, ok := listing["appointments"].([]any); ok {
			for _, item := range appts {
				if m, ok := item.(map[string]any); ok {
					return m
				}
			}
		}
	}
	return nil
}
