// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package api

import (
	"context"
	"time"

	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/shoots"
)

// ShootService is the cache manager as seen by the handlers.
type ShootService interface {
	Shoots(ctx context.Context, force bool) (models.ShootsCache, shoots.Status, error)
	FindShoot(ctx context.Context, id string) (models.Shoot, error)
}

// PipelineStore is the webhook event log as seen by the handlers.
type PipelineStore interface {
	Append(ctx context.Context, ev models.PipelineEvent) error
	Read(limit int) ([]models.PipelineEntry, error)
}

// HandlerConfig carries the settings handlers report or enforce.
type HandlerConfig struct {
	APIBase       string
	HasToken      bool
	WebhookSecret string
}

// Handler serves the API endpoints.
type Handler struct {
	shoots   ShootService
	pipeline PipelineStore
	config   HandlerConfig
	now      func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(svc ShootService, store PipelineStore, cfg HandlerConfig) *Handler {
	return &Handler{
		shoots:   svc,
		pipeline: store,
		config:   cfg,
		now:      time.Now,
	}
}
