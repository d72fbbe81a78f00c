// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package config provides centralized configuration management for Shootfolio.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file (config.yaml, or the path in CONFIG_PATH), then environment variables.
Only the variables listed in envMappings are read.

# Environment Variables

Provider:
  - ARYEO_API_BASE_URL (default https://api.aryeo.com/v1)
  - ARYEO_API_KEY (bearer token, optional)
  - ARYEO_INCLUDES (default listing,appointments,images,media,items)
  - ARYEO_TIMEOUT (default 30s)
  - ARYEO_REQUESTS_PER_SECOND (default 5, 0 disables pacing)

Webhook:
  - ARYEO_WEBHOOK_SECRET (optional; when set, x-webhook-secret must match)

Cache:
  - SHOOTS_CACHE_TTL_SECONDS (default 21600)
  - ARYEO_PAGE_SIZE (default 50), ARYEO_MAX_PAGES (default 20)
  - SHOOTS_REFRESH_TIMEOUT (default 2m)
  - SHOOTS_WARM_INTERVAL (default 5m, 0 disables periodic warming)

Storage:
  - DATA_DIR (default data)
  - SHOOTS_CACHE_FILE (default shoots-cache.json)
  - PIPELINE_LOG_FILE (default pipeline-events.ndjson)

Server and security:
  - HOST (default 0.0.0.0), PORT (default 8787), HTTP_TIMEOUT (default 30s)
  - CORS_ORIGINS (default *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - WEBHOOK_RATE_LIMIT_RPM

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	provider:
	  base_url: https://api.aryeo.com/v1
	  includes: [listing, images]
	cache:
	  ttl_seconds: 3600
	storage:
	  data_dir: /var/lib/shootfolio
*/
package config
