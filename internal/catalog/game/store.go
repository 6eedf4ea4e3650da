// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import "context"

// Repository abstracts persistent storage for games.
//
// Read methods only ever return published games; draft and archived rows are
// invisible to the catalog. The query cache layer is the sole read-path
// caller.
type Repository interface {
	// ListGames returns one page of published games matching the filter,
	// with translations and association IDs hydrated, plus the total match
	// count before paging.
	ListGames(ctx context.Context, filter Filter, sort Sort, limit, offset int) ([]*Game, int, error)

	// GetGameBySlug returns one published game with everything hydrated.
	GetGameBySlug(ctx context.Context, slug string) (*Game, error)

	// AddPlays adds the accumulated play-count deltas, keyed by game slug.
	// Unknown slugs are ignored.
	AddPlays(ctx context.Context, deltas map[string]int64) error
}
