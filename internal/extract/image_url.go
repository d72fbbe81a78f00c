// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package extract

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// imageExtensions are path extensions accepted as images.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
}

// nonImageExtensions are rejected even if the query string hints at an image.
var nonImageExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".pdf": true,
	".zip": true,
}

// formatQueryKeys are query parameters image CDNs use to select an output format.
var formatQueryKeys = []string{"format", "fm", "ext", "output", "type"}

var (
	uuidPattern      = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	fitInSegment     = regexp.MustCompile(`/fit-in/\d+x\d+/`)
	filtersSegment   = regexp.MustCompile(`/filters:[^/]*/`)
	sizeSuffix       = regexp.MustCompile(`-\d+x\d+(\.[a-z0-9]+)$`)
	variantSuffix    = regexp.MustCompile(`_(thumb|thumbnail|small|medium|large|xl|original|full)(\.[a-z0-9]+)$`)
	duplicateSlashes = regexp.MustCompile(`/{2,}`)
)

// IsImageURL reports whether s is an absolute http(s) URL that points at an image.
//
// The path extension decides first: known video/document/archive extensions
// are rejected and known image extensions accepted. Extension-less URLs are
// accepted only when the query string carries a format hint such as
// ?fm=webp or ?format=jpg, or imgix-style auto=format.
func IsImageURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if nonImageExtensions[ext] {
		return false
	}
	if imageExtensions[ext] {
		return true
	}

	return hasFormatHint(u.Query())
}

// hasFormatHint checks query parameters for an image output format.
func hasFormatHint(q url.Values) bool {
	for _, key := range formatQueryKeys {
		for _, v := range q[key] {
			if imageExtensions["."+strings.ToLower(strings.TrimSpace(v))] {
				return true
			}
		}
	}
	for _, v := range q["auto"] {
		if strings.Contains(strings.ToLower(v), "format") {
			return true
		}
	}
	return false
}

// Score rates how likely a URL is to be the full-resolution rendition.
// Each tier contributes at most once.
func Score(rawURL string) int {
	lower := strings.ToLower(rawURL)
	score := 0
	if strings.Contains(lower, "original") || strings.Contains(lower, "full") {
		score += 40
	}
	if strings.Contains(lower, "large") || strings.Contains(lower, "xl") {
		score += 20
	}
	if strings.Contains(lower, "medium") {
		score += 10
	}
	if strings.Contains(lower, "thumb") || strings.Contains(lower, "small") {
		score -= 20
	}
	return score
}

// CanonicalKey returns the dedupe key for an image URL.
//
// URLs embedding a UUID are keyed by that UUID regardless of host or size
// segments. Everything else is keyed by lowercased host + path with resize,
// filter, size and variant decorations removed. URLs that cannot be parsed
// fall back to the lowercased input.
func CanonicalKey(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)

	if m := uuidPattern.FindString(trimmed); m != "" {
		if id, err := uuid.Parse(m); err == nil {
			return "uuid:" + id.String()
		}
		return "uuid:" + strings.ToLower(m)
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return strings.ToLower(trimmed)
	}

	p := strings.ToLower(u.Path)
	p = replaceUntilStable(fitInSegment, p, "/")
	p = replaceUntilStable(filtersSegment, p, "/")
	p = sizeSuffix.ReplaceAllString(p, "$1")
	p = variantSuffix.ReplaceAllString(p, "$2")
	p = duplicateSlashes.ReplaceAllString(p, "/")

	return strings.ToLower(u.Hostname()) + p
}

// replaceUntilStable applies re until the string stops changing. Adjacent
// segments share their separating slash, so a single pass can miss one.
func replaceUntilStable(re *regexp.Regexp, s, repl string) string {
	for {
		next := re.ReplaceAllString(s, repl)
		if next == s {
			return s
		}
		s = next
	}
}
