// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category provides the category reference dataset: storage, the cached
read path, and the derivations the rest of the catalog consumes.

Architecture:

  - Repository (store.go, store_postgres.go): the only component that touches
    category tables. Returns raw rows with translations hydrated.
  - Cache (cache.go): the sole Repository caller on the read path. Base rows
    and per-category game counts live in separate cache entries with separate
    TTLs; counts churn with every play while the tree itself barely moves.
    The two entries are merged into fresh View slices on every read.
  - Derivations (derive.go): pure functions over resolved views. They hit no
    storage and return no errors.

Everything downstream (game decoration, HTTP handlers) works from Views, so
one cached dataset serves every category-shaped question.
*/
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/ludora/internal/catalog/translate"
	"github.com/taibuivan/ludora/internal/platform/cache"
)

// Cache keys for the category dataset.
const (
	keyBase  = "categories.base"
	keyStats = "categories.stats"
	keyAdmin = "categories.admin"
)

// TTLs carries the cache lifetimes for the category dataset's entries.
type TTLs struct {
	// BaseData covers the category rows themselves.
	BaseData time.Duration

	// Stats covers the per-category game counts.
	Stats time.Duration

	// Admin covers the disabled-included variant served to admin endpoints.
	Admin time.Duration
}

// Cache is the cached read path for the category dataset.
//
// It is the only caller of [Repository]; every public read is served from the
// store, computed at most once per TTL window regardless of request volume.
type Cache struct {
	store      *cache.Store
	repo       Repository
	baseLocale string
	ttl        TTLs
	log        *slog.Logger
}

// NewCache constructs the category [Cache].
func NewCache(store *cache.Store, repo Repository, baseLocale string, ttl TTLs, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		store:      store,
		repo:       repo,
		baseLocale: baseLocale,
		ttl:        ttl,
		log:        logger,
	}
}

/*
Resolved returns every enabled category resolved for the given locale, with
game counts merged in.

Description: Base rows and counts come from independent cache entries; the
merge happens on every call into a freshly allocated slice, so a stats refresh
never waits on a base refresh and callers never alias cached state.

Parameters:
  - ctx: context.Context
  - locale: string (requested locale code)

Returns:
  - []View: Resolved categories in sort order
  - error: Repository failures on a cold cache
*/
func (c *Cache) Resolved(ctx context.Context, locale string) ([]View, error) {
	base, err := c.base(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := c.counts(ctx)
	if err != nil {
		return nil, err
	}

	return c.resolve(base, counts, locale), nil
}

/*
ResolvedAdmin returns all categories, disabled ones included, resolved for
the given locale.

Description: Served from a separate cache entry with a shorter TTL so admin
edits become visible quickly without paying for the public entry's longevity.

Parameters:
  - ctx: context.Context
  - locale: string

Returns:
  - []View: All categories in sort order
  - error: Repository failures on a cold cache
*/
func (c *Cache) ResolvedAdmin(ctx context.Context, locale string) ([]View, error) {
	rows, err := cache.GetOrCompute(ctx, c.store, keyAdmin, []string{cache.TagCategories}, c.ttl.Admin,
		func(ctx context.Context) ([]*Category, error) {
			return c.repo.ListCategories(ctx, true)
		})
	if err != nil {
		return nil, err
	}

	counts, err := c.counts(ctx)
	if err != nil {
		return nil, err
	}

	return c.resolve(rows, counts, locale), nil
}

// base returns the cached enabled-category rows.
func (c *Cache) base(ctx context.Context) ([]*Category, error) {
	return cache.GetOrCompute(ctx, c.store, keyBase, []string{cache.TagCategories}, c.ttl.BaseData,
		func(ctx context.Context) ([]*Category, error) {
			return c.repo.ListCategories(ctx, false)
		})
}

// counts returns the cached per-category game counts.
//
// The entry carries the games tag as well: counts are a property of the game
// dataset, so a game write must bust them even when no category changed.
func (c *Cache) counts(ctx context.Context) (map[int]int, error) {
	return cache.GetOrCompute(ctx, c.store, keyStats, []string{cache.TagCategories, cache.TagGames}, c.ttl.Stats,
		func(ctx context.Context) (map[int]int, error) {
			return c.repo.CountGames(ctx)
		})
}

// resolve builds per-locale views from raw rows and a count map.
func (c *Cache) resolve(rows []*Category, counts map[int]int, locale string) []View {
	views := make([]View, 0, len(rows))
	for _, row := range rows {
		view := View{
			ID:             row.ID,
			ParentID:       row.ParentID,
			Slug:           row.Slug,
			Name:           row.Name,
			Description:    row.Description,
			Icon:           row.Icon,
			SortOrder:      row.SortOrder,
			IsEnabled:      row.IsEnabled,
			SEOTitle:       row.SEOTitle,
			SEODescription: row.SEODescription,
			GameCount:      counts[row.ID],
		}

		if t, ok := translate.Pick(row.Translations, locale, c.baseLocale); ok {
			view.Name = translate.Or(t.Name, row.Name)
			view.Description = translate.Or(t.Description, row.Description)
			view.SEOTitle = translate.Or(t.SEOTitle, row.SEOTitle)
			view.SEODescription = translate.Or(t.SEODescription, row.SEODescription)
		}

		views = append(views, view)
	}
	return views
}
