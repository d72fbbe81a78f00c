// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/shootfolio/internal/config"
	"github.com/tomtom215/shootfolio/internal/logging"
	"github.com/tomtom215/shootfolio/internal/metrics"
)

const (
	// maxErrorBodySize limits how much of an error response is read.
	maxErrorBodySize = 64 * 1024

	// maxResponseSize bounds successful response bodies.
	maxResponseSize = 32 << 20
)

// readBodyForError reads the response body for error reporting (max 64KB).
// Uses io.LimitReader to prevent unbounded memory allocation.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// Client performs authenticated GET requests against the provider API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a provider client from configuration.
func NewClient(cfg *config.ProviderConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		if b := int(cfg.RequestsPerSecond); b > burst {
			burst = b
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		cb:         newBreaker(breakerName),
	}
}

// HasToken reports whether a bearer token is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// BaseURL returns the provider API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerState exposes the circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.cb.State()
}

// Get performs a GET against path, negotiating the include parameter.
//
// Each list in includeLists is tried in order; the client moves on only when
// the provider rejects the includes (IsIncludeRejection). A final attempt is
// made with no include parameter. Any other error is returned at once; when
// every attempt is rejected the last error is returned.
func (c *Client) Get(ctx context.Context, path string, query url.Values, includeLists [][]string) ([]byte, error) {
	return c.get(ctx, "get", path, query, includeLists)
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, includeLists [][]string) ([]byte, error) {
	if !c.HasToken() {
		metrics.RecordProviderRequest(op, "config_error", 0)
		return nil, ErrMissingToken
	}

	attempts := includeAttempts(includeLists)
	var lastErr error

	for i, include := range attempts {
		q := cloneValues(query)
		if include != "" {
			q.Set("include", include)
		}

		body, err := c.do(ctx, op, path, q)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !IsIncludeRejection(err) || i == len(attempts)-1 {
			return nil, err
		}

		metrics.RecordIncludeFallback(op)
		logging.Ctx(ctx).Warn().
			Str("operation", op).
			Str("rejected_include", include).
			Str("next_include", attempts[i+1]).
			Msg("Provider rejected include list, retrying with fallback")
	}

	return nil, lastErr
}

// do executes one HTTP GET through the limiter and circuit breaker.
func (c *Client) do(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("provider rate limiter: %w", err)
	}

	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	start := time.Now()
	body, err := c.cb.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("provider request %s failed: %w", path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, newProviderError(path, resp.StatusCode, readBodyForError(resp.Body))
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return nil, fmt.Errorf("failed to read provider response: %w", err)
		}
		return data, nil
	})
	recordBreakerResult(c.cb, err)
	metrics.RecordProviderRequest(op, outcomeLabel(err), time.Since(start))

	return body, err
}

func outcomeLabel(err error) string {
	var perr *ProviderError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &perr):
		return "http_error"
	case IsUnavailable(err):
		return "rejected"
	default:
		return "transport_error"
	}
}

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, page, perPage int, includes []string) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	body, err := c.get(ctx, "list_orders", "/orders", query, IncludeFallbacks(includes))
	if err != nil {
		return nil, err
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode orders page %d: %w", page, err)
	}
	return records, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id string, includes []string) (map[string]any, error) {
	body, err := c.get(ctx, "get_order", "/orders/"+url.PathEscape(id), url.Values{}, IncludeFallbacks(includes))
	if err != nil {
		return nil, err
	}

	record, err := decodeRecord(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return record, nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

// decodeJSON decodes with UseNumber so numeric ids survive unchanged.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeRecords accepts {"data": [...]}, a bare array, or {"data": {...}}.
// Non-object array elements are skipped.
func decodeRecords(body []byte) ([]map[string]any, error) {
	v, err := decodeJSON(body)
	if err != nil {
		return nil, err
	}

	if obj, ok := v.(map[string]any); ok {
		if data, present := obj["data"]; present {
			v = data
		} else {
			return []map[string]any{obj}, nil
		}
	}

	switch data := v.(type) {
	case []any:
		records := make([]map[string]any, 0, len(data))
		for _, item := range data {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
		return records, nil
	case map[string]any:
		return []map[string]any{data}, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected response shape %T", v)
	}
}

// decodeRecord accepts {"data": {...}} or a bare object.
func decodeRecord(body []byte) (map[string]any, error) {
	v, err := decodeJSON(body)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape %T", v)
	}
	if data, ok := obj["data"].(map[string]any); ok {
		return data, nil
	}
	return obj, nil
}
