// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"sort"

	"github.com/taibuivan/ludora/pkg/slice"
)

// # Derivations
//
// Pure functions over resolved views. None of them touch storage or the
// cache; they reshape one already-cached dataset, so a warm cache answers
// every category-shaped question without new entries.

// ByID indexes views by category ID.
func ByID(views []View) map[int]View {
	index := make(map[int]View, len(views))
	for _, view := range views {
		index[view.ID] = view
	}
	return index
}

// NameByID maps category ID to resolved display name. Used by the game layer
// to decorate listings.
func NameByID(views []View) map[int]string {
	names := make(map[int]string, len(views))
	for _, view := range views {
		names[view.ID] = view.Name
	}
	return names
}

// BySlug finds the view with the given slug.
func BySlug(views []View, slug string) (View, bool) {
	for _, view := range views {
		if view.Slug == slug {
			return view, true
		}
	}
	return View{}, false
}

// Mains returns top-level categories (no parent) in sort order.
func Mains(views []View) []View {
	return slice.Filter(views, func(view View) bool {
		return view.ParentID == nil
	})
}

// SubsOf returns the direct children of the given category in sort order.
func SubsOf(views []View, parentID int) []View {
	return slice.Filter(views, func(view View) bool {
		return view.ParentID != nil && *view.ParentID == parentID
	})
}

// Tree assembles the two-level navigation tree: top-level categories with
// their children attached, both levels in sort order.
func Tree(views []View) []Node {
	nodes := make([]Node, 0)
	for _, main := range Mains(views) {
		nodes = append(nodes, Node{
			View:     main,
			Children: wrap(SubsOf(views, main.ID)),
		})
	}
	return nodes
}

// TopByGameCount returns the limit most-populated categories, ties broken by
// sort order. The input slice is not modified.
func TopByGameCount(views []View, limit int) []View {
	ranked := make([]View, len(views))
	copy(ranked, views)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].GameCount != ranked[j].GameCount {
			return ranked[i].GameCount > ranked[j].GameCount
		}
		return ranked[i].SortOrder < ranked[j].SortOrder
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// wrap lifts views into leaf nodes.
func wrap(views []View) []Node {
	return slice.Map(views, func(view View) Node {
		return Node{View: view, Children: []Node{}}
	})
}
