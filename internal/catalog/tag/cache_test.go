// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ludora/internal/catalog/tag"
	"github.com/taibuivan/ludora/internal/platform/cache"
)

type stubRepository struct {
	tags      []*tag.Tag
	counts    map[int]int
	listCalls int
}

func (stub *stubRepository) ListTags(ctx context.Context, includeDisabled bool) ([]*tag.Tag, error) {
	stub.listCalls++
	if includeDisabled {
		return stub.tags, nil
	}

	var enabled []*tag.Tag
	for _, t := range stub.tags {
		if t.IsEnabled {
			enabled = append(enabled, t)
		}
	}
	return enabled, nil
}

func (stub *stubRepository) CountGames(ctx context.Context) (map[int]int, error) {
	return stub.counts, nil
}

func fixtureRepository() *stubRepository {
	return &stubRepository{
		tags: []*tag.Tag{
			{
				ID: 1, Slug: "multiplayer", Name: "Multiplayer", IsEnabled: true,
				Translations: []tag.Translation{{TagID: 1, Locale: "fr", Name: "Multijoueur"}},
			},
			{ID: 2, Slug: "retro", Name: "Retro", IsEnabled: true},
			{ID: 3, Slug: "draft", Name: "Draft", IsEnabled: false},
		},
		counts: map[int]int{1: 8, 2: 3},
	}
}

func newCache(repo tag.Repository) *tag.Cache {
	return tag.NewCache(cache.NewStore(nil), repo, "en", tag.TTLs{
		BaseData: time.Hour,
		Stats:    time.Minute,
		Admin:    time.Minute,
	}, nil)
}

/* TestCache_Resolved covers locale resolution, counts, and disabled filtering. */
func TestCache_Resolved(t *testing.T) {
	repo := fixtureRepository()
	c := newCache(repo)
	ctx := context.Background()

	views, err := c.Resolved(ctx, "fr")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Multijoueur", views[0].Name)
	assert.Equal(t, 8, views[0].GameCount)
	assert.Equal(t, "Retro", views[1].Name)

	// Second locale rides the same cached dataset.
	_, err = c.Resolved(ctx, "de")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}

/* TestCache_AdminIncludesDisabled covers the admin variant. */
func TestCache_AdminIncludesDisabled(t *testing.T) {
	c := newCache(fixtureRepository())

	views, err := c.ResolvedAdmin(context.Background(), "en")
	require.NoError(t, err)
	assert.Len(t, views, 3)
}

/* TestTopByGameCount covers ranking with a name tie-break. */
func TestTopByGameCount(t *testing.T) {
	views := []tag.View{
		{ID: 1, Name: "Retro", GameCount: 3},
		{ID: 2, Name: "Arcade", GameCount: 3},
		{ID: 3, Name: "Multiplayer", GameCount: 8},
	}

	top := tag.TopByGameCount(views, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Multiplayer", top[0].Name)
	assert.Equal(t, "Arcade", top[1].Name)
}
