// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package provider

import "strings"

// IncludeFallbacks expands an include list into the attempts Get should make:
// the full list first, then each shorter prefix down to a single include.
// Blank and repeated entries are dropped. The no-include attempt is not part
// of the result; Get always appends it.
func IncludeFallbacks(includes []string) [][]string {
	cleaned := make([]string, 0, len(includes))
	seen := make(map[string]struct{}, len(includes))
	for _, inc := range includes {
		inc = strings.TrimSpace(inc)
		if inc == "" {
			continue
		}
		if _, dup := seen[inc]; dup {
			continue
		}
		seen[inc] = struct{}{}
		cleaned = append(cleaned, inc)
	}

	lists := make([][]string, 0, len(cleaned))
	for n := len(cleaned); n > 0; n-- {
		lists = append(lists, cleaned[:n:n])
	}
	return lists
}

// includeAttempts turns caller-supplied lists into query values, skipping
// empty lists and repeats, and ending with "" (no include parameter).
func includeAttempts(lists [][]string) []string {
	attempts := make([]string, 0, len(lists)+1)
	seen := make(map[string]struct{}, len(lists)+1)
	for _, list := range lists {
		joined := strings.Join(list, ",")
		if joined == "" {
			continue
		}
		if _, dup := seen[joined]; dup {
			continue
		}
		seen[joined] = struct{}{}
		attempts = append(attempts, joined)
	}
	return append(attempts, "")
}
