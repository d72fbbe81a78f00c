// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	gobreaker "github.com/sony/gobreaker/v2"
)

// maxErrorExcerpt is the number of body characters kept on a ProviderError.
const maxErrorExcerpt = 300

// ConfigurationError reports a provider call that cannot be made because the
// client is not configured for it (no bearer token).
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ErrMissingToken is returned by every provider call when no token is configured.
var ErrMissingToken = &ConfigurationError{Message: "provider API token is not configured"}

// ProviderError is a non-2xx response from the provider.
type ProviderError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider request %s failed with status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("provider request %s failed with status %d: %s", e.Path, e.StatusCode, e.Body)
}

// newProviderError builds a ProviderError with the body trimmed to an excerpt.
func newProviderError(path string, status int, body []byte) *ProviderError {
	return &ProviderError{
		Path:       path,
		StatusCode: status,
		Body:       excerpt(strings.TrimSpace(string(body)), maxErrorExcerpt),
	}
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// IsIncludeRejection reports whether err is the provider refusing the
// requested include parameter. Only this failure moves Get on to a shorter
// include list.
func IsIncludeRejection(err error) bool {
	var perr *ProviderError
	if !errors.As(err, &perr) {
		return false
	}
	body := strings.ToLower(perr.Body)
	return strings.Contains(body, "requested include") || strings.Contains(body, "not allowed")
}

// IsConfigurationError reports whether err is a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cerr *ConfigurationError
	return errors.As(err, &cerr)
}

// IsNotFound reports whether the provider answered 404.
func IsNotFound(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr) && perr.StatusCode == http.StatusNotFound
}

// IsUnavailable reports whether the call was refused locally because the
// circuit breaker is open or saturated.
func IsUnavailable(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
