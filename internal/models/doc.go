// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package models defines the data structures shared across Shootfolio.

Key Components:

  - Shoot: canonical, frontend-facing shape of one provider order/shoot
  - ShootsCache: the snapshot held in memory and persisted to disk
  - CacheStatus: freshness report attached to shoot listings
  - PipelineEvent / PipelineEntry: webhook-derived records in the pipeline log
  - ErrorResponse: the {"error": message} body used by every failing endpoint

Raw provider records are not modeled here. They are decoded into
map[string]any and handed to internal/normalize, because their shape varies
across provider accounts and API versions.
*/
package models
