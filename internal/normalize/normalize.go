// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package normalize

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/extract"
	"github.com/tomtom215/shootfolio/internal/models"
)

// statusKeys are checked in order for the order status.
var statusKeys = []string{"status", "order_status", "fulfillment_status"}

// Normalize converts a provider order record into a Shoot.
func Normalize(record map[string]any) models.Shoot {
	photos := extract.Extract(record).URLs()
	if len(photos) > models.MaxPhotos {
		photos = photos[:models.MaxPhotos]
	}

	thumbnail := extract.FindHero(record)
	if thumbnail == "" && len(photos) > 0 {
		thumbnail = photos[0]
	}

	shoot := models.Shoot{
		ID:           Identifier(record["id"]),
		Address:      ResolveAddress(record),
		Status:       Status(record),
		ScheduledAt:  ResolveScheduledAt(record),
		CreatedAt:    ParseTime(record["created_at"]),
		UpdatedAt:    ParseTime(record["updated_at"]),
		ThumbnailURL: thumbnail,
		Photos:       photos,
	}

	return Sanitize(shoot)
}

// Sanitize enforces the Shoot invariants: photos are trimmed, non-empty,
// unique by canonical key, exclude the thumbnail and hold at most
// models.MaxPhotos entries. Empty identity fields get their placeholders.
// The input's Photos slice is not modified.
func Sanitize(s models.Shoot) models.Shoot {
	s.ThumbnailURL = strings.TrimSpace(s.ThumbnailURL)

	thumbKey := ""
	if s.ThumbnailURL != "" {
		thumbKey = extract.CanonicalKey(s.ThumbnailURL)
	}

	seen := make(map[string]struct{}, len(s.Photos))
	photos := make([]string, 0, min(len(s.Photos), models.MaxPhotos))
	for _, p := range s.Photos {
		if len(photos) == models.MaxPhotos {
			break
		}
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key := extract.CanonicalKey(p)
		if key == thumbKey {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		photos = append(photos, p)
	}
	s.Photos = photos

	if s.ID == "" {
		s.ID = models.UnknownShootID
	}
	if s.Status == "" {
		s.Status = models.UnknownStatus
	}
	if s.Address == "" {
		s.Address = models.AddressUnavailable
	}
	return s
}

// Identifier renders an id value as a string. Numbers keep their integer
// form. It returns "" for missing or unsupported values.
func Identifier(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}

// Status returns the first non-empty status on record, or "" if none is set.
// Status objects are read through their "name" or "label" field.
func Status(record map[string]any) string {
	for _, key := range statusKeys {
		switch v := record[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			for _, field := range []string{"name", "label", "value"} {
				if s, ok := v[field].(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
			}
		}
	}
	return ""
}
