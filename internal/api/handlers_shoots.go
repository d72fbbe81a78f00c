// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/shootfolio/internal/logging"
	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/validation"
)

// Shoots handles GET /api/shoots.
//
// Query: limit (1..100, default 24), refresh=1 to force a background refresh.
// An empty cache is filled before responding; a stale one is served as is
// while a refresh runs.
func (h *Handler) Shoots(w http.ResponseWriter, r *http.Request) {
	limit := clampedIntParam(r, "limit", defaultShootsLimit, 1, maxShootsLimit)
	force := boolParam(r, "refresh")

	cache, status, err := h.shoots.Shoots(r.Context(), force)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	list := cache.Shoots
	if len(list) > limit {
		list = list[:limit]
	}
	if list == nil {
		list = []models.Shoot{}
	}

	respondJSON(w, http.StatusOK, models.ShootsResponse{
		Shoots:      list,
		SourceCount: cache.SourceCount,
		Cache:       status.CacheStatus(),
	})
}

// Shoot handles GET /api/shoot?order_id=ID.
func (h *Handler) Shoot(w http.ResponseWriter, r *http.Request) {
	shoot, ok := h.lookupShoot(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, models.ShootResponse{Shoot: shoot})
}

// OrderStatus handles GET /api/order-status?order_id=ID.
func (h *Handler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	shoot, ok := h.lookupShoot(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, models.OrderStatusResponse{
		OrderID:     orderIDParam(r),
		Status:      shoot.Status,
		Address:     shoot.Address,
		ScheduledAt: shoot.ScheduledAt,
	})
}

func orderIDParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("order_id"))
}

// lookupShoot validates order_id and resolves it, writing the error response
// itself when it returns false.
func (h *Handler) lookupShoot(w http.ResponseWriter, r *http.Request) (models.Shoot, bool) {
	q := orderQuery{OrderID: orderIDParam(r)}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.Error(), nil)
		return models.Shoot{}, false
	}

	shoot, err := h.shoots.FindShoot(r.Context(), q.OrderID)
	if err != nil {
		if statusForError(err) == http.StatusNotFound {
			logging.Ctx(r.Context()).Debug().
				Str("order_id", logging.SanitizeValue(q.OrderID)).
				Msg("Order not found")
		}
		respondServiceError(w, r, err)
		return models.Shoot{}, false
	}
	return shoot, true
}
