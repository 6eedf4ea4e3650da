// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ludora/internal/catalog/category"
	"github.com/taibuivan/ludora/internal/catalog/game"
	"github.com/taibuivan/ludora/internal/catalog/tag"
	"github.com/taibuivan/ludora/internal/platform/apperr"
	"github.com/taibuivan/ludora/internal/platform/cache"
)

// # Fixtures

type categoryRepo struct{}

func (categoryRepo) ListCategories(ctx context.Context, includeDisabled bool) ([]*category.Category, error) {
	return []*category.Category{
		{
			ID: 1, Slug: "action", Name: "Action", IsEnabled: true,
			Translations: []category.Translation{{CategoryID: 1, Locale: "fr", Name: "Jeux d'action"}},
		},
	}, nil
}

func (categoryRepo) CountGames(ctx context.Context) (map[int]int, error) {
	return map[int]int{1: 3}, nil
}

type tagRepo struct{}

func (tagRepo) ListTags(ctx context.Context, includeDisabled bool) ([]*tag.Tag, error) {
	return []*tag.Tag{
		{
			ID: 1, Slug: "retro", Name: "Retro", IsEnabled: true,
			Translations: []tag.Translation{{TagID: 1, Locale: "fr", Name: "Rétro"}},
		},
	}, nil
}

func (tagRepo) CountGames(ctx context.Context) (map[int]int, error) {
	return map[int]int{1: 2}, nil
}

// gameRepo implements enough of [game.Repository] in memory for the query
// layer: featured/category/tag filters plus popular and newest sorts.
type gameRepo struct {
	games     []*game.Game
	listCalls int
}

func (repo *gameRepo) ListGames(ctx context.Context, filter game.Filter, sortBy game.Sort, limit, offset int) ([]*game.Game, int, error) {
	repo.listCalls++

	var matched []*game.Game
	for _, g := range repo.games {
		if filter.FeaturedOnly && !g.IsFeatured {
			continue
		}
		if filter.CategoryID != 0 && !contains(g.CategoryIDs, filter.CategoryID) {
			continue
		}
		if filter.TagID != 0 && !contains(g.TagIDs, filter.TagID) {
			continue
		}
		matched = append(matched, g)
	}

	switch sortBy {
	case game.SortNewest:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].ReleasedAt.After(matched[j].ReleasedAt)
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].PlayCount > matched[j].PlayCount
		})
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (repo *gameRepo) GetGameBySlug(ctx context.Context, slug string) (*game.Game, error) {
	for _, g := range repo.games {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, apperr.NotFound("Game")
}

func (repo *gameRepo) AddPlays(ctx context.Context, deltas map[string]int64) error {
	for slug, delta := range deltas {
		for _, g := range repo.games {
			if g.Slug == slug {
				g.PlayCount += delta
			}
		}
	}
	return nil
}

func contains(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func mainOf(id int) *int { return &id }

func fixtureGames() []*game.Game {
	now := time.Now()
	return []*game.Game{
		{
			ID: 1, Slug: "mad-racer", Title: "Mad Racer",
			CategoryIDs: []int{1}, MainCategoryID: mainOf(1), TagIDs: []int{1},
			IsFeatured: true, PlayCount: 1000, Rating: 4.0,
			ReleasedAt: now.Add(-24 * time.Hour),
			Translations: []game.Translation{
				{GameID: 1, Locale: "fr", Title: "Course Folle"},
			},
		},
		{
			ID: 2, Slug: "puzzle-pop", Title: "Puzzle Pop",
			CategoryIDs: []int{1}, MainCategoryID: mainOf(1),
			PlayCount: 5000, Rating: 4.5,
			ReleasedAt: now.Add(-90 * 24 * time.Hour),
		},
		{
			ID: 3, Slug: "space-run", Title: "Space Run",
			TagIDs:    []int{1},
			PlayCount: 200, Rating: 3.0,
			ReleasedAt: now.Add(-48 * time.Hour),
		},
	}
}

type harness struct {
	store   *cache.Store
	repo    *gameRepo
	queries *game.Queries
}

func newHarness() *harness {
	store := cache.NewStore(nil)
	refTTL := category.TTLs{BaseData: time.Hour, Stats: time.Hour, Admin: time.Hour}

	categories := category.NewCache(store, categoryRepo{}, "en", refTTL, nil)
	tags := tag.NewCache(store, tagRepo{}, "en", tag.TTLs(refTTL), nil)

	repo := &gameRepo{games: fixtureGames()}
	queries := game.NewQueries(store, repo, categories, tags, "en", game.TTLs{
		List:      time.Minute,
		Detail:    time.Minute,
		Spotlight: time.Minute,
	}, nil)

	return &harness{store: store, repo: repo, queries: queries}
}

// # Tests

/*
TestQueries_AllCachesPerParams verifies that identical parameter sets share
one entry while any differing parameter computes a new one.
*/
func TestQueries_AllCachesPerParams(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	first, err := h.queries.All(ctx, "en", game.SortPopular, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, h.repo.listCalls)
	assert.Equal(t, 3, first.Meta.Total)
	assert.True(t, first.Meta.HasMore)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "puzzle-pop", first.Items[0].Slug)

	// Same parameters: cache hit.
	_, err = h.queries.All(ctx, "en", game.SortPopular, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, h.repo.listCalls)

	// Different page: new entry.
	second, err := h.queries.All(ctx, "en", game.SortPopular, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, h.repo.listCalls)
	require.Len(t, second.Items, 1)
	assert.False(t, second.Meta.HasMore)

	// Different locale: new entry too.
	_, err = h.queries.All(ctx, "fr", game.SortPopular, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, h.repo.listCalls)
}

/*
TestQueries_Decoration verifies that listings embed locale-resolved category
and tag names from the reference caches.
*/
func TestQueries_Decoration(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	listing, err := h.queries.ByCategory(ctx, "fr", "action", game.SortPopular, 1, 10)
	require.NoError(t, err)
	require.Len(t, listing.Items, 2)

	racer := listing.Items[1]
	assert.Equal(t, "mad-racer", racer.Slug)
	assert.Equal(t, "Course Folle", racer.Title)
	assert.Equal(t, "Jeux d'action", racer.MainCategory)
	assert.Equal(t, []string{"Jeux d'action"}, racer.Categories)
	assert.Equal(t, []string{"Rétro"}, racer.Tags)

	// Base locale resolves base names from the same raw rows.
	listing, err = h.queries.ByCategory(ctx, "en", "action", game.SortPopular, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Mad Racer", listing.Items[1].Title)
	assert.Equal(t, "Action", listing.Items[1].MainCategory)
}

/*
TestQueries_UnknownSlugs verifies 404 semantics for category, tag, and game
lookups, and that failures leave no cache entries behind.
*/
func TestQueries_UnknownSlugs(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, err := h.queries.ByCategory(ctx, "en", "missing", game.SortPopular, 1, 10)
	assert.Equal(t, apperr.NotFound("Category"), err)

	_, err = h.queries.ByTag(ctx, "en", "missing", game.SortPopular, 1, 10)
	assert.Equal(t, apperr.NotFound("Tag"), err)

	_, err = h.queries.BySlug(ctx, "en", "missing")
	require.Error(t, err)

	// Only the reference datasets were cached; no listing entry was stored
	// for the failed lookups.
	entries := h.store.Len()
	_, err = h.queries.BySlug(ctx, "en", "mad-racer")
	require.NoError(t, err)
	assert.Equal(t, entries+1, h.store.Len())
}

/*
TestQueries_FeaturedBackfill verifies that a short featured rail is padded
with most-played games, without duplicates, and that the padding stays out
of the cached entry.
*/
func TestQueries_FeaturedBackfill(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	rail, err := h.queries.Featured(ctx, "en", 3)
	require.NoError(t, err)
	require.Len(t, rail, 3)

	// Curated game first, then most-played padding.
	assert.Equal(t, "mad-racer", rail[0].Slug)
	assert.True(t, rail[0].IsFeatured)
	assert.Equal(t, "puzzle-pop", rail[1].Slug)
	assert.Equal(t, "space-run", rail[2].Slug)

	// No slug appears twice even though mad-racer is also most-played.
	seen := map[string]int{}
	for _, view := range rail {
		seen[view.Slug]++
	}
	for slug, count := range seen {
		assert.Equal(t, 1, count, "slug %s duplicated", slug)
	}

	// A second read pads again from cache without recomputing.
	calls := h.repo.listCalls
	rail, err = h.queries.Featured(ctx, "en", 3)
	require.NoError(t, err)
	assert.Len(t, rail, 3)
	assert.Equal(t, calls, h.repo.listCalls)
}

/*
TestQueries_Trending verifies that fresh traction outranks stale popularity
and that the rail is padded to the requested size.
*/
func TestQueries_Trending(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	rail, err := h.queries.Trending(ctx, "en", 3)
	require.NoError(t, err)
	require.Len(t, rail, 3)

	// mad-racer is a day old with real traction; puzzle-pop has more plays
	// but its freshness decayed to zero months ago.
	assert.Equal(t, "mad-racer", rail[0].Slug)
}

/*
TestQueries_InvalidationBustsListings verifies that busting a decoration
dataset's tag discards game listings that embed it.
*/
func TestQueries_InvalidationBustsListings(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, err := h.queries.All(ctx, "en", game.SortPopular, 1, 10)
	require.NoError(t, err)
	calls := h.repo.listCalls

	// Category rename: listings embedding category names must recompute.
	h.store.Invalidate(cache.TagCategories)

	_, err = h.queries.All(ctx, "en", game.SortPopular, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, calls+1, h.repo.listCalls)
}

/* TestQueries_SearchRequiresTerm verifies empty-term rejection. */
func TestQueries_SearchRequiresTerm(t *testing.T) {
	h := newHarness()

	_, err := h.queries.Search(context.Background(), "en", "", 1, 10)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}
