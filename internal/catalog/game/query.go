// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package game provides the game catalog: storage, the cached query layer, and
the play-count tracker.

Architecture:

  - Repository (store.go, store_postgres.go): filtered, sorted, paginated
    access to published games with translations and associations hydrated.
  - Queries (query.go): the cached read path. Every operation caches one
    entry per exact parameter set (operation, filter, sort, page, limit,
    locale). Entries are decorated with category and tag names from the
    reference caches inside the computation, so each entry registers under
    the games tag and every dataset it embeds.
  - Tracker (tracker.go): play-count accumulation in Redis, flushed to
    Postgres in the background. Plays deliberately bypass cache
    invalidation; count drift is bounded by the stats TTL.

Featured and trending backfill happens after the cache read. The cached
entry holds only the true result, so backfill padding never leaks into
other consumers of the entry.
*/
package game

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/taibuivan/ludora/internal/catalog/category"
	"github.com/taibuivan/ludora/internal/catalog/tag"
	"github.com/taibuivan/ludora/internal/catalog/translate"
	"github.com/taibuivan/ludora/internal/platform/apperr"
	"github.com/taibuivan/ludora/internal/platform/cache"
	"github.com/taibuivan/ludora/pkg/pagination"
)

// decorationTags is the tag set for every game listing entry: the games
// dataset itself plus the reference datasets whose names are embedded.
var decorationTags = []string{cache.TagGames, cache.TagCategories, cache.TagTags}

// TTLs carries the cache lifetimes for the game query layer.
type TTLs struct {
	// List covers paginated listings (browse, search, by-category, by-tag).
	List time.Duration

	// Detail covers single-game lookups.
	Detail time.Duration

	// Spotlight covers the homepage rails (featured, trending, most played,
	// newest).
	Spotlight time.Duration
}

// Listing is one cached page of games plus its pagination metadata.
type Listing struct {
	Items []View          `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// Queries is the cached read path for the game catalog.
//
// It is the only caller of the game [Repository] on the read path, and it
// reads category and tag names exclusively through their reference caches,
// never from storage.
type Queries struct {
	store      *cache.Store
	repo       Repository
	categories *category.Cache
	tags       *tag.Cache
	baseLocale string
	ttl        TTLs
	log        *slog.Logger

	// now is a clock seam for trending tests. Defaults to time.Now.
	now func() time.Time
}

// NewQueries constructs the game [Queries] layer.
func NewQueries(store *cache.Store, repo Repository, categories *category.Cache, tags *tag.Cache, baseLocale string, ttl TTLs, logger *slog.Logger) *Queries {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queries{
		store:      store,
		repo:       repo,
		categories: categories,
		tags:       tags,
		baseLocale: baseLocale,
		ttl:        ttl,
		log:        logger,
		now:        time.Now,
	}
}

/*
All returns one page of the full published catalog.

Parameters:
  - ctx: context.Context
  - locale: string
  - sortBy: Sort
  - page, limit: int

Returns:
  - *Listing: Decorated page with pagination metadata
  - error: Cold-cache repository failures
*/
func (q *Queries) All(ctx context.Context, locale string, sortBy Sort, page, limit int) (*Listing, error) {
	key := cache.Key("games.all", cache.Params{
		"sort": string(sortBy), "page": page, "limit": limit, "locale": locale,
	})
	return q.cachedListing(ctx, key, q.ttl.List, Filter{}, sortBy, page, limit, locale)
}

/*
ByCategory returns one page of games in the category with the given slug.

Description: The slug resolves through the category reference cache, so a
listing for a renamed or disabled category 404s as soon as the categories tag
is busted.

Parameters:
  - ctx: context.Context
  - locale: string
  - slug: string (category slug)
  - sortBy: Sort
  - page, limit: int

Returns:
  - *Listing: Decorated page
  - error: apperr.NotFound for an unknown slug, repository failures otherwise
*/
func (q *Queries) ByCategory(ctx context.Context, locale, slug string, sortBy Sort, page, limit int) (*Listing, error) {
	views, err := q.categories.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}

	target, ok := category.BySlug(views, slug)
	if !ok {
		return nil, apperr.NotFound("Category")
	}

	key := cache.Key("games.by_category", cache.Params{
		"slug": slug, "sort": string(sortBy), "page": page, "limit": limit, "locale": locale,
	})
	return q.cachedListing(ctx, key, q.ttl.List, Filter{CategoryID: target.ID}, sortBy, page, limit, locale)
}

/*
ByTag returns one page of games carrying the tag with the given slug.

Parameters:
  - ctx: context.Context
  - locale: string
  - slug: string (tag slug)
  - sortBy: Sort
  - page, limit: int

Returns:
  - *Listing: Decorated page
  - error: apperr.NotFound for an unknown slug, repository failures otherwise
*/
func (q *Queries) ByTag(ctx context.Context, locale, slug string, sortBy Sort, page, limit int) (*Listing, error) {
	views, err := q.tags.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}

	target, ok := tag.BySlug(views, slug)
	if !ok {
		return nil, apperr.NotFound("Tag")
	}

	key := cache.Key("games.by_tag", cache.Params{
		"slug": slug, "sort": string(sortBy), "page": page, "limit": limit, "locale": locale,
	})
	return q.cachedListing(ctx, key, q.ttl.List, Filter{TagID: target.ID}, sortBy, page, limit, locale)
}

/*
Search returns one page of games matching a free-text query across base and
translated titles.

Parameters:
  - ctx: context.Context
  - locale: string
  - query: string (non-empty search term)
  - page, limit: int

Returns:
  - *Listing: Decorated page ordered by popularity
  - error: apperr.ValidationError for an empty term, repository failures otherwise
*/
func (q *Queries) Search(ctx context.Context, locale, query string, page, limit int) (*Listing, error) {
	if query == "" {
		return nil, apperr.ValidationError("Search term is required")
	}

	key := cache.Key("games.search", cache.Params{
		"q": query, "page": page, "limit": limit, "locale": locale,
	})
	return q.cachedListing(ctx, key, q.ttl.List, Filter{Search: query}, SortPopular, page, limit, locale)
}

/*
Featured returns the curated featured rail, padded with most-played games
when curation runs short.

Description: The cached entry holds only the truly featured games. The
padding is applied after the cache read, so consumers that want the raw
curated list share the same entry.

Parameters:
  - ctx: context.Context
  - locale: string
  - limit: int

Returns:
  - []View: Exactly min(limit, catalog size) games, featured first
  - error: Cold-cache repository failures
*/
func (q *Queries) Featured(ctx context.Context, locale string, limit int) ([]View, error) {
	key := cache.Key("games.featured", cache.Params{"limit": limit, "locale": locale})

	featured, err := cache.GetOrCompute(ctx, q.store, key, decorationTags, q.ttl.Spotlight,
		func(ctx context.Context) ([]View, error) {
			games, _, err := q.repo.ListGames(ctx, Filter{FeaturedOnly: true}, SortPopular, limit, 0)
			if err != nil {
				return nil, err
			}
			return q.resolveAll(ctx, games, locale)
		})
	if err != nil {
		return nil, err
	}

	return q.backfill(ctx, featured, locale, limit)
}

/*
MostPlayed returns the all-time most played games.

Parameters:
  - ctx: context.Context
  - locale: string
  - limit: int

Returns:
  - []View: Games in descending play order
  - error: Cold-cache repository failures
*/
func (q *Queries) MostPlayed(ctx context.Context, locale string, limit int) ([]View, error) {
	key := cache.Key("games.most_played", cache.Params{"limit": limit, "locale": locale})

	return cache.GetOrCompute(ctx, q.store, key, decorationTags, q.ttl.Spotlight,
		func(ctx context.Context) ([]View, error) {
			games, _, err := q.repo.ListGames(ctx, Filter{}, SortPopular, limit, 0)
			if err != nil {
				return nil, err
			}
			return q.resolveAll(ctx, games, locale)
		})
}

/*
Newest returns the most recently released games.

Parameters:
  - ctx: context.Context
  - locale: string
  - limit: int

Returns:
  - []View: Games in descending release order
  - error: Cold-cache repository failures
*/
func (q *Queries) Newest(ctx context.Context, locale string, limit int) ([]View, error) {
	key := cache.Key("games.newest", cache.Params{"limit": limit, "locale": locale})

	return cache.GetOrCompute(ctx, q.store, key, decorationTags, q.ttl.Spotlight,
		func(ctx context.Context) ([]View, error) {
			games, _, err := q.repo.ListGames(ctx, Filter{}, SortNewest, limit, 0)
			if err != nil {
				return nil, err
			}
			return q.resolveAll(ctx, games, locale)
		})
}

/*
Trending returns recently released games ranked by [TrendingScore], padded
with most-played games when the recent window runs short.

Description: The candidate window is three times the requested limit, taken
from the newest releases. Scoring happens inside the cached computation; the
padding, like the featured rail's, is applied after the cache read.

Parameters:
  - ctx: context.Context
  - locale: string
  - limit: int

Returns:
  - []View: Games in descending score order
  - error: Cold-cache repository failures
*/
func (q *Queries) Trending(ctx context.Context, locale string, limit int) ([]View, error) {
	key := cache.Key("games.trending", cache.Params{"limit": limit, "locale": locale})

	trending, err := cache.GetOrCompute(ctx, q.store, key, decorationTags, q.ttl.Spotlight,
		func(ctx context.Context) ([]View, error) {
			window := limit * trendingCandidateMultiplier
			candidates, _, err := q.repo.ListGames(ctx, Filter{}, SortNewest, window, 0)
			if err != nil {
				return nil, err
			}

			now := q.now()
			sort.SliceStable(candidates, func(i, j int) bool {
				a := TrendingScore(now, candidates[i].ReleasedAt, candidates[i].PlayCount, candidates[i].Rating)
				b := TrendingScore(now, candidates[j].ReleasedAt, candidates[j].PlayCount, candidates[j].Rating)
				return a > b
			})

			if len(candidates) > limit {
				candidates = candidates[:limit]
			}
			return q.resolveAll(ctx, candidates, locale)
		})
	if err != nil {
		return nil, err
	}

	return q.backfill(ctx, trending, locale, limit)
}

/*
BySlug returns one published game, fully resolved and decorated.

Parameters:
  - ctx: context.Context
  - locale: string
  - slug: string

Returns:
  - *View: The game
  - error: apperr.NotFound when no published game has the slug
*/
func (q *Queries) BySlug(ctx context.Context, locale, slug string) (*View, error) {
	key := cache.Key("games.detail", cache.Params{"slug": slug, "locale": locale})

	return cache.GetOrCompute(ctx, q.store, key, decorationTags, q.ttl.Detail,
		func(ctx context.Context) (*View, error) {
			g, err := q.repo.GetGameBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}

			views, err := q.resolveAll(ctx, []*Game{g}, locale)
			if err != nil {
				return nil, err
			}
			return &views[0], nil
		})
}

// cachedListing serves one paginated, decorated page from the cache.
func (q *Queries) cachedListing(ctx context.Context, key string, ttl time.Duration, filter Filter, sortBy Sort, page, limit int, locale string) (*Listing, error) {
	return cache.GetOrCompute(ctx, q.store, key, decorationTags, ttl,
		func(ctx context.Context) (*Listing, error) {
			offset := pagination.Params{Page: page, Limit: limit}.Offset()

			games, total, err := q.repo.ListGames(ctx, filter, sortBy, limit, offset)
			if err != nil {
				return nil, err
			}

			items, err := q.resolveAll(ctx, games, locale)
			if err != nil {
				return nil, err
			}

			return &Listing{
				Items: items,
				Meta:  pagination.NewMeta(page, limit, total),
			}, nil
		})
}

// resolveAll resolves raw games for a locale and decorates them with
// category and tag names from the reference caches.
func (q *Queries) resolveAll(ctx context.Context, games []*Game, locale string) ([]View, error) {
	categoryViews, err := q.categories.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}
	tagViews, err := q.tags.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}

	categoryNames := category.NameByID(categoryViews)
	tagNames := tag.NameByID(tagViews)

	views := make([]View, 0, len(games))
	for _, g := range games {
		views = append(views, q.resolve(g, locale, categoryNames, tagNames))
	}
	return views, nil
}

// resolve builds one locale-resolved, decorated view.
func (q *Queries) resolve(g *Game, locale string, categoryNames, tagNames map[int]string) View {
	view := View{
		ID:             g.ID,
		Slug:           g.Slug,
		Title:          g.Title,
		Description:    g.Description,
		Instructions:   g.Instructions,
		ThumbnailURL:   g.ThumbnailURL,
		GameURL:        g.GameURL,
		Width:          g.Width,
		Height:         g.Height,
		IsFeatured:     g.IsFeatured,
		PlayCount:      g.PlayCount,
		Rating:         g.Rating,
		RatingCount:    g.RatingCount,
		SEOTitle:       g.SEOTitle,
		SEODescription: g.SEODescription,
		ReleasedAt:     g.ReleasedAt,
		Categories:     []string{},
		Tags:           []string{},
	}

	if t, ok := translate.Pick(g.Translations, locale, q.baseLocale); ok {
		view.Title = translate.Or(t.Title, g.Title)
		view.Description = translate.Or(t.Description, g.Description)
		view.Instructions = translate.Or(t.Instructions, g.Instructions)
		view.SEOTitle = translate.Or(t.SEOTitle, g.SEOTitle)
		view.SEODescription = translate.Or(t.SEODescription, g.SEODescription)
	}

	for _, id := range g.CategoryIDs {
		if name, ok := categoryNames[id]; ok {
			view.Categories = append(view.Categories, name)
		}
	}
	if g.MainCategoryID != nil {
		view.MainCategory = categoryNames[*g.MainCategoryID]
	}
	for _, id := range g.TagIDs {
		if name, ok := tagNames[id]; ok {
			view.Tags = append(view.Tags, name)
		}
	}

	return view
}

// backfill pads a rail to limit entries with most-played games, skipping
// slugs already present. The padded slice is fresh; the cached input is
// never modified.
func (q *Queries) backfill(ctx context.Context, rail []View, locale string, limit int) ([]View, error) {
	if len(rail) >= limit {
		return rail, nil
	}

	popular, err := q.MostPlayed(ctx, locale, limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rail))
	padded := make([]View, 0, limit)
	for _, view := range rail {
		seen[view.Slug] = struct{}{}
		padded = append(padded, view)
	}

	for _, view := range popular {
		if len(padded) >= limit {
			break
		}
		if _, dup := seen[view.Slug]; dup {
			continue
		}
		padded = append(padded, view)
	}

	return padded, nil
}
