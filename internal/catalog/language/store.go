// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "context"

// Repository abstracts persistent storage for languages. The cache layer is
// its only caller on the read path.
type Repository interface {
	// ListLanguages returns all languages, enabled or not, ordered by code.
	ListLanguages(ctx context.Context) ([]*Language, error)
}
