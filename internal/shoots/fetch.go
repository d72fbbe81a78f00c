// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package shoots

import (
	"context"
	"fmt"
	"slices"

	"github.com/tomtom215/shootfolio/internal/logging"
	"github.com/tomtom215/shootfolio/internal/models"
	"github.com/tomtom215/shootfolio/internal/normalize"
)

// fetchAll pages through the order listing and builds a complete snapshot.
// Any page error aborts the whole fetch.
func (m *Manager) fetchAll(ctx context.Context) (models.ShootsCache, error) {
	byID := make(map[string]models.Shoot)
	var order []string
	sourceCount := 0

	for page := 1; page <= m.opts.MaxPages; page++ {
		records, err := m.source.ListOrders(ctx, page, m.opts.PageSize, m.opts.Includes)
		if err != nil {
			return models.ShootsCache{}, fmt.Errorf("fetch orders page %d: %w", page, err)
		}
		if len(records) == 0 {
			break
		}

		sourceCount += len(records)
		for _, record := range records {
			shoot := normalize.Normalize(record)
			if _, seen := byID[shoot.ID]; !seen {
				order = append(order, shoot.ID)
			}
			byID[shoot.ID] = shoot
		}

		logging.Ctx(ctx).Debug().
			Int("page", page).
			Int("records", len(records)).
			Msg("Fetched orders page")

		if len(records) < m.opts.PageSize {
			break
		}
	}

	shoots := make([]models.Shoot, 0, len(order))
	for _, id := range order {
		shoots = append(shoots, byID[id])
	}
	sortByActivity(shoots)

	updatedAt := m.now().UTC()
	return models.ShootsCache{
		UpdatedAt:   &updatedAt,
		Shoots:      shoots,
		SourceCount: sourceCount,
	}, nil
}

// sortByActivity orders shoots newest activity first. Ties keep fetch order.
func sortByActivity(shoots []models.Shoot) {
	slices.SortStableFunc(shoots, func(a, b models.Shoot) int {
		return b.ActivityTime().Compare(a.ActivityTime())
	})
}
