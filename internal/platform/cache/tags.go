// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache

import "log/slog"

// # Invalidation Tags
//
// One tag per dataset. Every entry whose value depends on a dataset — even
// indirectly, such as a game listing that embeds category names — must be
// registered under that dataset's tag.
const (
	// TagCategories covers the category reference dataset.
	TagCategories = "categories"

	// TagTags covers the tag reference dataset.
	TagTags = "tags"

	// TagGames covers the game dataset and every cached listing of it.
	TagGames = "games"

	// TagLanguages covers the language reference dataset.
	TagLanguages = "languages"
)

// KnownTags enumerates every valid invalidation tag.
var KnownTags = []string{TagCategories, TagTags, TagGames, TagLanguages}

// IsKnownTag reports whether name is one of the enumerated tags.
func IsKnownTag(name string) bool {
	for _, tag := range KnownTags {
		if tag == name {
			return true
		}
	}
	return false
}

// Invalidator is the write-path facade over [Store.Invalidate].
//
// Mutation handlers call it after a successful write, before signaling
// success to their caller, so the next read is a guaranteed miss.
type Invalidator struct {
	store *Store
	log   *slog.Logger
}

// NewInvalidator wraps a Store for use by the write/mutation layer.
func NewInvalidator(store *Store, logger *slog.Logger) *Invalidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invalidator{store: store, log: logger}
}

// Invalidate busts the given tags.
func (inv *Invalidator) Invalidate(tags ...string) {
	inv.store.Invalidate(tags...)
}

// InvalidateNavigation busts every reference dataset at once. Used after
// edits that reshape the site's navigation (category tree, tag set,
// language list).
func (inv *Invalidator) InvalidateNavigation() {
	inv.store.Invalidate(TagCategories, TagTags, TagLanguages)
}

// InvalidateGames busts the game dataset. Category and tag entries embedded
// in game listings are covered by the listings' own tag registrations, so a
// pure game edit only needs this.
func (inv *Invalidator) InvalidateGames() {
	inv.store.Invalidate(TagGames)
}
