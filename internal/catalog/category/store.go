// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// Repository abstracts persistent storage for categories.
//
// The cache layer is this interface's only caller in the read path; nothing
// else in the application queries category storage directly.
type Repository interface {
	// ListCategories returns all categories with their translation rows
	// hydrated, ordered by sort order then name. When includeDisabled is
	// false, disabled categories are filtered out at the query level.
	ListCategories(ctx context.Context, includeDisabled bool) ([]*Category, error)

	// CountGames returns the number of published games per category ID.
	// Categories with no games are absent from the map.
	CountGames(ctx context.Context) (map[int]int, error)
}
