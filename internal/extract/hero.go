// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package extract

import "strings"

// HeroKeys are checked in order at every object level when looking for a cover image.
var HeroKeys = []string{
	"thumbnail_url",
	"cover_photo_url",
	"hero_image_url",
	"image_url",
	"url",
}

// FindHero returns the first image URL stored under one of HeroKeys,
// searching depth-first. It returns "" when no such key holds an image URL.
func FindHero(record any) string {
	return findHero(record, 0)
}

func findHero(v any, depth int) string {
	if depth > MaxDepth {
		return ""
	}
	switch t := v.(type) {
	case map[string]any:
		for _, key := range HeroKeys {
			if s, ok := t[key].(string); ok && IsImageURL(s) {
				return strings.TrimSpace(s)
			}
		}
		for _, k := range sortedKeys(t) {
			if hero := findHero(t[k], depth+1); hero != "" {
				return hero
			}
		}
	case []any:
		for _, item := range t {
			if hero := findHero(item, depth+1); hero != "" {
				return hero
			}
		}
	case []map[string]any:
		for _, item := range t {
			if hero := findHero(item, depth+1); hero != "" {
				return hero
			}
		}
	}
	return ""
}
