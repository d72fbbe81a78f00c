// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package logging

import (
	"strings"
	"unicode"
)

// maxLoggedValueLen caps caller-supplied values written to logs.
const maxLoggedValueLen = 200

// SanitizeValue prepares a caller-supplied string (query parameter, webhook
// field) for logging: control characters are dropped so values cannot forge
// log lines, and long values are truncated.
func SanitizeValue(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return truncateString(cleaned, maxLoggedValueLen)
}

// SanitizeSecret masks a secret for logging.
func SanitizeSecret(secret string) string {
	switch {
	case secret == "":
		return "(unset)"
	case len(secret) < 8:
		return "***"
	default:
		return secret[:2] + "***" + secret[len(secret)-2:]
	}
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
