// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shootfolio/internal/models"
)

// addressFallbackLimit caps the JSON excerpt used when no address parts resolve.
const addressFallbackLimit = 120

// addressPaths locate address values, most specific first.
var addressPaths = [][]string{
	{"listing", "address"},
	{"property", "address"},
	{"listing", "property", "address"},
	{"address"},
	{"property_address"},
	{"listing_address"},
}

// containerPaths are objects that sometimes carry address fields directly.
var containerPaths = [][]string{
	{"listing"},
	{"property"},
}

// Address part aliases, tried in order within each group.
var (
	streetKeys = []string{"street", "street_address", "address_line_1", "address1", "line1", "street1"}
	cityKeys   = []string{"city", "locality", "town"}
	stateKeys  = []string{"state", "state_code", "province", "region"}
	postalKeys = []string{"postal_code", "postal", "zip", "zip_code", "postcode"}
	rawKeys    = []string{"full_address", "formatted_address", "unparsed_address", "address_string"}
)

// ResolveAddress derives a display address from an order-like record.
//
// Structured address objects are joined from their street, city, state and
// postal parts. Failing that, a raw address string is used, then a JSON
// excerpt of the first address object found, then models.AddressUnavailable.
func ResolveAddress(record map[string]any) string {
	if record == nil {
		return models.AddressUnavailable
	}

	var addresses, containers []map[string]any
	for _, p := range addressPaths {
		if obj, ok := lookup(record, p...).(map[string]any); ok {
			addresses = append(addresses, obj)
		}
	}
	for _, p := range containerPaths {
		if obj, ok := lookup(record, p...).(map[string]any); ok {
			containers = append(containers, obj)
		}
	}
	containers = append(containers, record)

	for _, obj := range addresses {
		if s := joinAddressParts(obj, false); s != "" {
			return s
		}
	}
	for _, obj := range containers {
		if s := joinAddressParts(obj, true); s != "" {
			return s
		}
	}

	for _, p := range addressPaths {
		if s, ok := lookup(record, p...).(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	for _, obj := range append(addresses, containers...) {
		if s := firstString(obj, rawKeys); s != "" {
			return s
		}
	}

	for _, obj := range addresses {
		if len(obj) > 0 {
			if excerpt := jsonExcerpt(obj); excerpt != "" {
				return excerpt
			}
		}
	}

	return models.AddressUnavailable
}

// joinAddressParts joins the address parts present on obj. Containers such
// as the listing need a street before their city/state fields count.
func joinAddressParts(obj map[string]any, requireStreet bool) string {
	if requireStreet && firstString(obj, streetKeys) == "" {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, keys := range [][]string{streetKeys, cityKeys, stateKeys, postalKeys} {
		if s := firstString(obj, keys); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func jsonExcerpt(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	s := string(data)
	if utf8.RuneCountInString(s) <= addressFallbackLimit {
		return s
	}
	return string([]rune(s)[:addressFallbackLimit])
}

// firstString returns the first non-blank string stored under one of keys.
// Numeric values such as zip codes are rendered as strings.
func firstString(obj map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := obj[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number, float64:
			return Identifier(v)
		}
	}
	return ""
}

func lookup(record map[string]any, path ...string) any {
	var cur any = record
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}
