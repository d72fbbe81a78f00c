// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

HTTP Metrics:
  - http_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status
  - http_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - http_requests_in_flight: Active requests (gauge)

Provider Metrics:
  - provider_requests_total: Provider API attempts (counter)
    Labels: operation, outcome
  - provider_request_duration_seconds: Provider latency (histogram)
  - provider_include_fallbacks_total: Include-list downgrades (counter)

Shoot Cache Metrics:
  - shoot_cache_refresh_total: Refreshes by result (counter)
  - shoot_cache_refresh_duration_seconds: Refresh latency (histogram)
  - shoot_cache_shoots: Shoots held in memory (gauge)
  - shoot_cache_last_success_timestamp: Last successful refresh (gauge)
  - shoot_cache_reads_total: Reads by state fresh/stale/cold (counter)
  - shoot_cache_snapshot_writes_total: Snapshot writes by result (counter)

Pipeline Metrics:
  - pipeline_events_appended_total: Appended events by type (counter)
  - pipeline_append_errors_total: Failed appends (counter)
  - pipeline_parse_errors_total: Unparseable lines seen on read (counter)
  - webhook_requests_total: Webhook deliveries by result (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Requests by result (counter)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: State changes (counter)

# Usage Example

	start := time.Now()
	err := manager.Refresh(ctx)
	metrics.RecordCacheRefresh(time.Since(start), len(cache.Shoots), err)
*/
package metrics
