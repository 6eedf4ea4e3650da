// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// Repository abstracts persistent storage for tags. The cache layer is its
// only caller on the read path.
type Repository interface {
	// ListTags returns all tags with translations hydrated, ordered by name.
	// When includeDisabled is false, disabled tags are filtered out.
	ListTags(ctx context.Context, includeDisabled bool) ([]*Tag, error)

	// CountGames returns the number of published games per tag ID.
	CountGames(ctx context.Context) (map[int]int, error)
}
