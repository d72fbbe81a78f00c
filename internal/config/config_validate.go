// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate checks that configuration values are usable.
// A missing provider token is allowed: health reports it and provider calls
// fail with a configuration error instead.
func (c *Config) Validate() error {
	if err := c.validateProvider(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateProvider validates provider configuration
func (c *Config) validateProvider() error {
	if err := validateBaseURL(c.Provider.BaseURL, "ARYEO_API_BASE_URL"); err != nil {
		return err
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("ARYEO_TIMEOUT must be positive")
	}
	if c.Provider.RequestsPerSecond < 0 {
		return fmt.Errorf("ARYEO_REQUESTS_PER_SECOND must not be negative")
	}
	return nil
}

// validateBaseURL checks scheme and host. API base URLs may carry a path
// prefix such as /v1 but no query string.
func validateBaseURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}

// Cache bounds
const (
	maxPageSize = 200
	maxMaxPages = 1000
)

// validateCache validates shoot cache configuration
func (c *Config) validateCache() error {
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("SHOOTS_CACHE_TTL_SECONDS must be positive")
	}
	if c.Cache.PageSize < 1 || c.Cache.PageSize > maxPageSize {
		return fmt.Errorf("ARYEO_PAGE_SIZE must be between 1 and %d", maxPageSize)
	}
	if c.Cache.MaxPages < 1 || c.Cache.MaxPages > maxMaxPages {
		return fmt.Errorf("ARYEO_MAX_PAGES must be between 1 and %d", maxMaxPages)
	}
	if c.Cache.RefreshTimeout <= 0 {
		return fmt.Errorf("SHOOTS_REFRESH_TIMEOUT must be positive")
	}
	if c.Cache.WarmInterval < 0 {
		return fmt.Errorf("SHOOTS_WARM_INTERVAL must not be negative")
	}
	return nil
}

// validateStorage validates on-disk locations
func (c *Config) validateStorage() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Storage.SnapshotFile == "" {
		return fmt.Errorf("SHOOTS_CACHE_FILE is required")
	}
	if c.Storage.PipelineFile == "" {
		return fmt.Errorf("PIPELINE_LOG_FILE is required")
	}
	if c.Storage.SnapshotFile == c.Storage.PipelineFile {
		return fmt.Errorf("SHOOTS_CACHE_FILE and PIPELINE_LOG_FILE must differ")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}
	return c.validateRateLimits()
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	if c.Security.WebhookRateLimitRPM < 1 {
		return fmt.Errorf("WEBHOOK_RATE_LIMIT_RPM must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
