// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package extract finds photo URLs inside arbitrarily shaped provider records.

Provider orders nest listings, appointments and media under keys that change
between API versions and accounts, so nothing here relies on a schema. The
extractor walks every value of a decoded JSON document and keeps each string
that looks like an absolute image URL.

Candidates are grouped by a canonical key so that resized or re-encoded
variants of the same photo collapse into one entry:

  - URLs containing a UUID are keyed "uuid:<uuid>"
  - otherwise the key is host + path with image-proxy resize segments
    (/fit-in/WxH/), filter segments (/filters:.../), -WxH size suffixes and
    _thumb/_small/... variant suffixes removed

Within a key only the highest scoring variant survives. Scores favour
"original"/"full" renditions and penalise thumbnails:

	+40 original, full
	+20 large, xl
	+10 medium
	-20 thumb, thumbnail, small

FindHero is a separate lookup for the single cover image. It checks a fixed
list of well-known keys (thumbnail_url, cover_photo_url, hero_image_url,
image_url, url) depth-first and does not consult scores.

Traversal is bounded by MaxDepth. Object keys are visited in sorted order
because decoded JSON objects carry no key order, and the result must be the
same for the same input every time.
*/
package extract
