// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package main is the entry point for the Shootfolio server.

Shootfolio fronts the Aryeo real estate photography API for a portfolio site.
It keeps a normalized, TTL-bounded cache of shoots (persisted as a JSON
snapshot), serves it over a small JSON API and records inbound Aryeo webhooks
in an append-only NDJSON pipeline log.

# Application Architecture

	RootSupervisor ("shootfolio")
	├── CacheSupervisor ("cache-layer")
	│   └── Cache warmer (refresh on start, then every SHOOTS_WARM_INTERVAL)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (/api/*, /metrics)

Startup order:

 1. Configuration: Koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, with an slog bridge for the supervisor
 3. Provider client: rate limited, circuit broken, include fallback
 4. Shoot cache manager: seeded from the on-disk snapshot when present
 5. Pipeline log
 6. HTTP router and server
 7. Supervisor tree

# Configuration

Common environment variables:

	ARYEO_API_KEY              bearer token; without it provider calls fail with 503
	ARYEO_API_BASE_URL         default https://api.aryeo.com/v1
	ARYEO_INCLUDES             comma-separated include list
	ARYEO_WEBHOOK_SECRET       required x-webhook-secret value when set
	SHOOTS_CACHE_TTL_SECONDS   default 21600
	ARYEO_PAGE_SIZE            default 50
	ARYEO_MAX_PAGES            default 20
	DATA_DIR                   snapshot and pipeline log directory (default data)
	HOST, PORT                 listener (default 0.0.0.0:8787)
	LOG_LEVEL, LOG_FORMAT      zerolog level and json|console

# Example Usage

	export ARYEO_API_KEY=your-token
	export ARYEO_WEBHOOK_SECRET=$(openssl rand -hex 16)
	./shootfolio

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree: the HTTP server drains for up
to the configured timeout and any in-flight cache refresh is canceled.
*/
package main
