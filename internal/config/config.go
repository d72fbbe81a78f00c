// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Provider: photography provider API base URL, token and include list
//  2. Webhook: shared secret for inbound webhooks
//  3. Cache: shoot cache TTL, pagination and background warming
//  4. Storage: data directory, snapshot and pipeline log file names
//  5. Server / Security: listener, CORS and rate limiting
//  6. Logging: level, format and caller info
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	client := provider.NewClient(&cfg.Provider)
type Config struct {
	Provider ProviderConfig `koanf:"provider"`
	Webhook  WebhookConfig  `koanf:"webhook"`
	Cache    CacheConfig    `koanf:"cache"`
	Storage  StorageConfig  `koanf:"storage"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ProviderConfig holds settings for the photography provider (Aryeo) API.
//
// Environment Variables:
//   - ARYEO_API_BASE_URL: API base URL (default: https://api.aryeo.com/v1)
//   - ARYEO_API_KEY: bearer token; empty disables provider calls
//   - ARYEO_INCLUDES: comma-separated include list requested with orders
//   - ARYEO_TIMEOUT: per-request timeout (default: 30s)
//   - ARYEO_REQUESTS_PER_SECOND: outbound pacing, 0 disables (default: 5)
type ProviderConfig struct {
	BaseURL           string        `koanf:"base_url"`
	Token             string        `koanf:"token"`
	Includes          []string      `koanf:"includes"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
}

// HasToken reports whether a provider token is configured.
func (p *ProviderConfig) HasToken() bool {
	return p.Token != ""
}

// WebhookConfig holds inbound webhook settings.
// An empty Secret accepts every delivery.
type WebhookConfig struct {
	Secret string `koanf:"secret"`
}

// CacheConfig holds shoot cache settings.
type CacheConfig struct {
	TTLSeconds     int64         `koanf:"ttl_seconds"`
	PageSize       int           `koanf:"page_size"`
	MaxPages       int           `koanf:"max_pages"`
	RefreshTimeout time.Duration `koanf:"refresh_timeout"`
	WarmInterval   time.Duration `koanf:"warm_interval"` // 0 disables periodic warming
}

// TTL returns the cache time-to-live as a duration.
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// StorageConfig holds on-disk locations.
type StorageConfig struct {
	DataDir      string `koanf:"data_dir"`
	SnapshotFile string `koanf:"snapshot_file"`
	PipelineFile string `koanf:"pipeline_file"`
}

// SnapshotPath returns the full path of the cache snapshot.
func (s *StorageConfig) SnapshotPath() string {
	return filepath.Join(s.DataDir, s.SnapshotFile)
}

// PipelinePath returns the full path of the pipeline log.
func (s *StorageConfig) PipelinePath() string {
	return filepath.Join(s.DataDir, s.PipelineFile)
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins         []string      `koanf:"cors_origins"`
	RateLimitReqs       int           `koanf:"rate_limit_reqs"`
	RateLimitWindow     time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled   bool          `koanf:"rate_limit_disabled"`
	WebhookRateLimitRPM int           `koanf:"webhook_rate_limit_rpm"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration using the layered approach:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
