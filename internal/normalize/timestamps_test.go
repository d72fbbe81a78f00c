// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package normalize

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want *time.Time
	}{
		{"rfc3339", "2026-01-02T03:04:05Z", ptr(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))},
		{"offset converted to utc", "2026-01-02T03:04:05+02:00", ptr(time.Date(2026, 1, 2, 1, 4, 5, 0, time.UTC))},
		{"fractional seconds", "2026-01-02T03:04:05.123Z", ptr(time.Date(2026, 1, 2, 3, 4, 5, 123000000, time.UTC))},
		{"no zone", "2026-01-02T03:04:05", ptr(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))},
		{"space separated", "2026-01-02 03:04:05", ptr(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))},
		{"date only", "2026-01-02", ptr(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))},
		{"unix seconds", 1767225600.0, ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))},
		{"garbage", "next tuesday", nil},
		{"empty", "", nil},
		{"nil", nil, nil},
		{"bool", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseTime(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("ParseTime(%v) = %v, want nil", tt.in, got)
			case tt.want != nil && (got == nil || !got.Equal(*tt.want)):
				t.Errorf("ParseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveScheduledAt_Order(t *testing.T) {
	t.Parallel()

	appt := "2026-05-01T09:00:00Z"
	sched := "2026-05-02T09:00:00Z"
	created := "2026-05-03T09:00:00Z"

	tests := []struct {
		name   string
		record map[string]any
		want   string
	}{
		{
			name: "appointment wins",
			record: map[string]any{
				"appointments": []any{map[string]any{"start_at": appt}},
				"scheduled_at": sched,
				"created_at":   created,
			},
			want: appt,
		},
		{
			name: "single appointment object",
			record: map[string]any{
				"appointment": map[string]any{"start": appt},
				"created_at":  created,
			},
			want: appt,
		},
		{
			name: "appointment without start falls through",
			record: map[string]any{
				"appointments": []any{map[string]any{"status": "pending"}},
				"scheduled_at": sched,
			},
			want: sched,
		},
		{
			name:   "created_at last",
			record: map[string]any{"created_at": created},
			want:   created,
		},
		{
			name:   "none",
			record: map[string]any{"appointments": []any{}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveScheduledAt(tt.record)
			if tt.want == "" {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			want, _ := time.Parse(time.RFC3339, tt.want)
			if got == nil || !got.Equal(want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
