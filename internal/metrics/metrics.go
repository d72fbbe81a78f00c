// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// Provider Metrics
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of requests sent to the photography provider API",
		},
		[]string{"operation", "outcome"}, // outcome: "success", "http_error", "transport_error"
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Duration of provider API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ProviderIncludeFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_include_fallbacks_total",
			Help: "Total number of retries with a shorter include list after the provider rejected includes",
		},
		[]string{"operation"},
	)

	// Shoot Cache Metrics
	CacheRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoot_cache_refresh_total",
			Help: "Total number of shoot cache refreshes",
		},
		[]string{"result"}, // result: "success", "failure"
	)

	CacheRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shoot_cache_refresh_duration_seconds",
			Help:    "Duration of full shoot cache refreshes in seconds",
			Buckets: []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	CacheShoots = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shoot_cache_shoots",
			Help: "Number of shoots currently held in the cache",
		},
	)

	CacheLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shoot_cache_last_success_timestamp",
			Help: "Unix timestamp of the last successful cache refresh",
		},
	)

	CacheReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoot_cache_reads_total",
			Help: "Total number of shoot cache reads by freshness",
		},
		[]string{"state"}, // state: "fresh", "stale", "cold", "forced", "hit", "lookup_hit", "miss"
	)

	SnapshotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoot_cache_snapshot_writes_total",
			Help: "Total number of cache snapshot writes",
		},
		[]string{"result"},
	)

	// Pipeline Metrics
	PipelineEventsAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_events_appended_total",
			Help: "Total number of webhook events appended to the pipeline log",
		},
		[]string{"event_type"},
	)

	PipelineAppendErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_append_errors_total",
			Help: "Total number of failed pipeline log appends",
		},
	)

	PipelineParseErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_parse_errors_total",
			Help: "Total number of unparseable pipeline log lines encountered on read",
		},
	)

	WebhookRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Total number of webhook deliveries by result",
		},
		[]string{"result"}, // result: "accepted", "unauthorized", "invalid", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordProviderRequest records one provider HTTP attempt.
func RecordProviderRequest(operation, outcome string, duration time.Duration) {
	ProviderRequestsTotal.WithLabelValues(operation, outcome).Inc()
	ProviderRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordIncludeFallback counts a retry with a reduced include list.
func RecordIncludeFallback(operation string) {
	ProviderIncludeFallbacks.WithLabelValues(operation).Inc()
}

// RecordCacheRefresh records a completed cache refresh
func RecordCacheRefresh(duration time.Duration, shoots int, err error) {
	CacheRefreshDuration.Observe(duration.Seconds())
	if err != nil {
		CacheRefreshTotal.WithLabelValues("failure").Inc()
		return
	}
	CacheRefreshTotal.WithLabelValues("success").Inc()
	CacheShoots.Set(float64(shoots))
	CacheLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordCacheRead records whether a read was served fresh, stale or from a cold cache.
func RecordCacheRead(state string) {
	CacheReads.WithLabelValues(state).Inc()
}

// RecordSnapshotWrite records the outcome of a snapshot write
func RecordSnapshotWrite(err error) {
	if err != nil {
		SnapshotWrites.WithLabelValues("failure").Inc()
		return
	}
	SnapshotWrites.WithLabelValues("success").Inc()
}

// RecordPipelineAppend records a pipeline log append
func RecordPipelineAppend(eventType string, err error) {
	if err != nil {
		PipelineAppendErrors.Inc()
		return
	}
	if eventType == "" {
		eventType = "unknown"
	}
	PipelineEventsAppended.WithLabelValues(eventType).Inc()
}

// RecordPipelineParseErrors adds n unparseable lines seen while reading the log.
func RecordPipelineParseErrors(n int) {
	if n > 0 {
		PipelineParseErrors.Add(float64(n))
	}
}

// RecordWebhook records a webhook delivery result
func RecordWebhook(result string) {
	WebhookRequests.WithLabelValues(result).Inc()
}
