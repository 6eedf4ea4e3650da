// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag provides the flat tag reference dataset: storage, the cached
// read path, and derivations. It mirrors the category package without the
// hierarchy.
package tag

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/ludora/internal/catalog/translate"
	"github.com/taibuivan/ludora/internal/platform/cache"
)

const (
	keyBase  = "tags.base"
	keyStats = "tags.stats"
	keyAdmin = "tags.admin"
)

// TTLs carries the cache lifetimes for the tag dataset's entries.
type TTLs struct {
	BaseData time.Duration
	Stats    time.Duration
	Admin    time.Duration
}

// Cache is the cached read path for the tag dataset and the sole caller of
// [Repository].
type Cache struct {
	store      *cache.Store
	repo       Repository
	baseLocale string
	ttl        TTLs
	log        *slog.Logger
}

// NewCache constructs the tag [Cache].
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

// Resolved returns every enabled tag resolved for the given locale, with game
// counts merged in. Base rows and counts are independent cache entries merged
// into a fresh slice on every call.
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

// ResolvedAdmin returns all tags, disabled ones included, from a separate
// shorter-lived entry.
func (c *Cache) ResolvedAdmin(ctx context.Context, locale string) ([]View, error) {
	rows, err := cache.GetOrCompute(ctx, c.store, keyAdmin, []string{cache.TagTags}, c.ttl.Admin,
		func(ctx context.Context) ([]*Tag, error) {
			return c.repo.ListTags(ctx, true)
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

func (c *Cache) base(ctx context.Context) ([]*Tag, error) {
	return cache.GetOrCompute(ctx, c.store, keyBase, []string{cache.TagTags}, c.ttl.BaseData,
		func(ctx context.Context) ([]*Tag, error) {
			return c.repo.ListTags(ctx, false)
		})
}

// counts carries the games tag as well: a game write changes tag counts even
// when no tag row changed.
func (c *Cache) counts(ctx context.Context) (map[int]int, error) {
	return cache.GetOrCompute(ctx, c.store, keyStats, []string{cache.TagTags, cache.TagGames}, c.ttl.Stats,
		func(ctx context.Context) (map[int]int, error) {
			return c.repo.CountGames(ctx)
		})
}

func (c *Cache) resolve(rows []*Tag, counts map[int]int, locale string) []View {
	views := make([]View, 0, len(rows))
	for _, row := range rows {
		view := View{
			ID:          row.ID,
			Slug:        row.Slug,
			Name:        row.Name,
			Description: row.Description,
			IsEnabled:   row.IsEnabled,
			GameCount:   counts[row.ID],
		}

		if t, ok := translate.Pick(row.Translations, locale, c.baseLocale); ok {
			view.Name = translate.Or(t.Name, row.Name)
			view.Description = translate.Or(t.Description, row.Description)
		}

		views = append(views, view)
	}
	return views
}
