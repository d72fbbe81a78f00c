// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package pipeline

import (
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/models"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return payload
}

func TestEventFromWebhook(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 15, 4, 5, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name        string
		raw         string
		wantType    string
		wantOrderID string
		wantStatus  string
		wantAddress string
	}{
		{
			name:        "resource envelope",
			raw:         `{"id":"evt_1","name":"ORDER_CREATED","resource":{"id":"ord_9","status":"Scheduled","listing":{"address":{"street":"12 Oak Ave","city":"Austin","state":"TX","postal_code":"78701"}}}}`,
			wantType:    "ORDER_CREATED",
			wantOrderID: "ord_9",
			wantStatus:  "Scheduled",
			wantAddress: "12 Oak Ave, Austin, TX, 78701",
		},
		{
			name:        "nested data object",
			raw:         `{"event":"order.updated","data":{"object":{"id":42,"order_status":{"label":"Delivered"},"address":"7 Pine Rd"}}}`,
			wantType:    "order.updated",
			wantOrderID: "42",
			wantStatus:  "Delivered",
			wantAddress: "7 Pine Rd",
		},
		{
			name:        "flat payload with order_id",
			raw:         `{"type":"ping","order_id":"ord_flat"}`,
			wantType:    "ping",
			wantOrderID: "ord_flat",
			wantStatus:  "",
			wantAddress: models.AddressUnavailable,
		},
		{
			name:        "no event type",
			raw:         `{"order":{"id":"o1"}}`,
			wantType:    UnknownEventType,
			wantOrderID: "o1",
			wantAddress: models.AddressUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ev := EventFromWebhook(decode(t, tt.raw), []byte(tt.raw), now)
			if ev.EventType != tt.wantType {
				t.Errorf("EventType = %q, want %q", ev.EventType, tt.wantType)
			}
			if ev.OrderID != tt.wantOrderID {
				t.Errorf("OrderID = %q, want %q", ev.OrderID, tt.wantOrderID)
			}
			if ev.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", ev.Status, tt.wantStatus)
			}
			if ev.Address != tt.wantAddress {
				t.Errorf("Address = %q, want %q", ev.Address, tt.wantAddress)
			}
			if ev.ReceivedAt.Location() != time.UTC || !ev.ReceivedAt.Equal(now) {
				t.Errorf("ReceivedAt = %v, want %v in UTC", ev.ReceivedAt, now)
			}
		})
	}
}

func TestEventFromWebhook_RawCompacted(t *testing.T) {
	t.Parallel()

	raw := "{\n  \"event\": \"x\",\n  \"order\": { \"id\": \"1\" }\n}\n"
	ev := EventFromWebhook(decode(t, raw), []byte(raw), time.Now())
	if got := string(ev.Raw); got != `{"event":"x","order":{"id":"1"}}` {
		t.Errorf("Raw = %s", got)
	}
}

func TestCompactRaw_InvalidJSON(t *testing.T) {
	t.Parallel()

	got := compactRaw([]byte("not json"))
	if string(got) != `"not json"` {
		t.Errorf("compactRaw() = %s, want quoted string", got)
	}
}
