// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package api

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/logging"
	"github.com/tomtom215/shootfolio/internal/metrics"
	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/pipeline"
)

// webhookSecretHeader carries the shared secret on provider webhooks.
const webhookSecretHeader = "X-Webhook-Secret"

// AryeoWebhook handles POST /api/webhooks/aryeo.
//
// When a secret is configured the x-webhook-secret header must match it
// (401 otherwise). The body must be valid JSON (400 otherwise); arrays and
// scalars are recorded with no order fields. The delivery is recorded in the
// pipeline log and acknowledged with {"ok": true}.
func (h *Handler) AryeoWebhook(w http.ResponseWriter, r *http.Request) {
	if !h.webhookAuthorized(r) {
		metrics.RecordWebhook("unauthorized")
		logging.Ctx(r.Context()).Warn().Str("remote_addr", r.RemoteAddr).Msg("Rejected webhook with invalid secret")
		respondError(w, r, http.StatusUnauthorized, ErrInvalidWebhookSecret.Error(), nil)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		metrics.RecordWebhook("invalid")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, "webhook body too large", nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, "failed to read webhook body", nil)
		return
	}

	payload, err := decodeWebhook(body)
	if err != nil {
		metrics.RecordWebhook("invalid")
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ev := pipeline.EventFromWebhook(payload, body, h.now())
	if err := h.pipeline.Append(r.Context(), ev); err != nil {
		metrics.RecordWebhook("error")
		respondError(w, r, http.StatusInternalServerError, "failed to record webhook", err)
		return
	}

	metrics.RecordWebhook("accepted")
	logging.Ctx(r.Context()).Info().
		Str("event_type", logging.SanitizeValue(ev.EventType)).
		Str("order_id", logging.SanitizeValue(ev.OrderID)).
		Msg("Webhook recorded")

	respondJSON(w, http.StatusOK, models.WebhookAck{OK: true})
}

// webhookAuthorized compares the header in constant time. With no secret
// configured every request passes.
func (h *Handler) webhookAuthorized(r *http.Request) bool {
	if h.config.WebhookSecret == "" {
		return true
	}
	got := r.Header.Get(webhookSecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.config.WebhookSecret)) == 1
}

func decodeWebhook(body []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, errors.New("invalid JSON body")
	}
	// Arrays and scalars are still recorded; they just carry no order fields.
	payload, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return payload, nil
}

// PipelineLeads handles GET /api/pipeline/leads?limit=N (1..1000, default 200).
func (h *Handler) PipelineLeads(w http.ResponseWriter, r *http.Request) {
	limit := clampedIntParam(r, "limit", defaultLeadsLimit, 1, maxLeadsLimit)

	entries, err := h.pipeline.Read(limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "failed to read pipeline log", err)
		return
	}
	if entries == nil {
		entries = []models.PipelineEntry{}
	}

	respondJSON(w, http.StatusOK, models.PipelineLeadsResponse{
		Events: entries,
		Count:  len(entries),
	})
}
