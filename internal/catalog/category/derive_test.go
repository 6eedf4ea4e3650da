// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ludora/internal/catalog/category"
	"github.com/taibuivan/ludora/pkg/pointer"
)

func fixtureViews() []category.View {
	return []category.View{
		{ID: 1, Slug: "action", Name: "Action", SortOrder: 1, GameCount: 12},
		{ID: 2, ParentID: pointer.To(1), Slug: "shooter", Name: "Shooter", SortOrder: 1, GameCount: 5},
		{ID: 3, ParentID: pointer.To(1), Slug: "platformer", Name: "Platformer", SortOrder: 2, GameCount: 7},
		{ID: 4, Slug: "puzzle", Name: "Puzzle", SortOrder: 2, GameCount: 12},
	}
}

/* TestByID and name index derivations. */
func TestIndexes(t *testing.T) {
	views := fixtureViews()

	byID := category.ByID(views)
	assert.Equal(t, "Puzzle", byID[4].Name)

	names := category.NameByID(views)
	assert.Equal(t, map[int]string{1: "Action", 2: "Shooter", 3: "Platformer", 4: "Puzzle"}, names)
}

/* TestBySlug covers slug lookup hits and misses. */
func TestBySlug(t *testing.T) {
	views := fixtureViews()

	view, ok := category.BySlug(views, "shooter")
	assert.True(t, ok)
	assert.Equal(t, 2, view.ID)

	_, ok = category.BySlug(views, "missing")
	assert.False(t, ok)
}

/* TestTree covers the parent/child assembly. */
func TestTree(t *testing.T) {
	nodes := category.Tree(fixtureViews())
	require.Len(t, nodes, 2)

	assert.Equal(t, "action", nodes[0].Slug)
	require.Len(t, nodes[0].Children, 2)
	assert.Equal(t, "shooter", nodes[0].Children[0].Slug)
	assert.Equal(t, "platformer", nodes[0].Children[1].Slug)

	assert.Equal(t, "puzzle", nodes[1].Slug)
	assert.Empty(t, nodes[1].Children)
}

/* TestTopByGameCount covers ranking, tie-breaking, and limit clamping. */
func TestTopByGameCount(t *testing.T) {
	views := fixtureViews()

	top := category.TopByGameCount(views, 3)
	require.Len(t, top, 3)

	// 12-count tie broken by sort order: action before puzzle.
	assert.Equal(t, "action", top[0].Slug)
	assert.Equal(t, "puzzle", top[1].Slug)
	assert.Equal(t, "platformer", top[2].Slug)

	// Input order untouched.
	assert.Equal(t, "action", views[0].Slug)
	assert.Equal(t, "shooter", views[1].Slug)

	// A limit beyond the dataset returns everything.
	assert.Len(t, category.TopByGameCount(views, 99), 4)
}
