// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package normalize converts raw provider order records into models.Shoot.

Normalize never fails: missing fields fall back to models.UnknownShootID,
models.UnknownStatus and models.AddressUnavailable, and unparseable
timestamps become nil. The same record always produces the same Shoot.

Field resolution order:

  - id: record "id" (string or number)
  - address: structured listing/property address object, then a raw address
    string, then the first 120 characters of the address JSON
  - scheduled_at: first appointment start, then record-level scheduled
    timestamps, then created_at
  - thumbnail: hero key scan (see extract.FindHero), then the best photo
  - photos: ranked extractor candidates, capped at models.MaxPhotos, never
    including the thumbnail's canonical key

Sanitize re-applies the photo invariants and is safe to call on shoots read
back from an older snapshot.
*/
package normalize
