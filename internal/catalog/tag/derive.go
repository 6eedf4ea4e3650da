// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "sort"

// ByID indexes views by tag ID.
func ByID(views []View) map[int]View {
	index := make(map[int]View, len(views))
	for _, view := range views {
		index[view.ID] = view
	}
	return index
}

// NameByID maps tag ID to resolved display name.
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

// TopByGameCount returns the limit most-used tags, ties broken by name.
// The input slice is not modified.
func TopByGameCount(views []View, limit int) []View {
	ranked := make([]View, len(views))
	copy(ranked, views)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].GameCount != ranked[j].GameCount {
			return ranked[i].GameCount > ranked[j].GameCount
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
