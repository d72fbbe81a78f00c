// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package api

import (
	"net/http"

	"github.com/tomtom215/shootfolio/internal/models"
)

// Health handles GET /api/health. It never calls the provider.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{
		OK:       true,
		APIBase:  h.config.APIBase,
		HasToken: h.config.HasToken,
	})
}
