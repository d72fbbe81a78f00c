// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package models

import "time"

// MaxPhotos caps the number of gallery URLs carried by a single Shoot.
const MaxPhotos = 24

// UnknownShootID is used when a provider record carries no identity.
const UnknownShootID = "unknown"

// UnknownStatus is the display status for records without one.
const UnknownStatus = "Unknown"

// AddressUnavailable is the display address when nothing usable was found.
const AddressUnavailable = "Address unavailable"

// Shoot is the normalized representation of one provider order.
//
// ID is the dedupe key across pages of a single fetch. Photos never contains
// the thumbnail (compared by canonical image key) and never exceeds MaxPhotos.
type Shoot struct {
	ID           string     `json:"id"`
	Address      string     `json:"address"`
	Status       string     `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Photos       []string   `json:"photos"`
}

// ActivityTime returns the best available timestamp for ordering shoots:
// scheduled, then updated, then created. Zero time when none are set.
func (s *Shoot) ActivityTime() time.Time {
	for _, t := range []*time.Time{s.ScheduledAt, s.UpdatedAt, s.CreatedAt} {
		if t != nil {
			return *t
		}
	}
	return time.Unix(0, 0).UTC()
}

// ShootsCache is the wholesale-replaced snapshot of all normalized shoots.
// A nil UpdatedAt means the cache has never been populated.
type ShootsCache struct {
	UpdatedAt   *time.Time `json:"updated_at"`
	Shoots      []Shoot    `json:"shoots"`
	SourceCount int        `json:"source_count"`
}

// Populated reports whether a refresh has ever succeeded for this snapshot.
func (c *ShootsCache) Populated() bool {
	return c.UpdatedAt != nil
}

// CacheStatus reports cache freshness alongside a shoot listing.
type CacheStatus struct {
	UpdatedAt  *time.Time `json:"updated_at"`
	Fresh      bool       `json:"fresh"`
	Refreshing bool       `json:"refreshing"`
	TTLSeconds int64      `json:"ttl_seconds"`
}

// ShootsResponse is the body of GET /api/shoots.
type ShootsResponse struct {
	Shoots      []Shoot     `json:"shoots"`
	SourceCount int         `json:"source_count"`
	Cache       CacheStatus `json:"cache"`
}

// ShootResponse is the body of GET /api/shoot.
type ShootResponse struct {
	Shoot Shoot `json:"shoot"`
}

// OrderStatusResponse is the body of GET /api/order-status.
type OrderStatusResponse struct {
	OrderID     string     `json:"order_id"`
	Status      string     `json:"status"`
	Address     string     `json:"address"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}
