// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "time"

// Field identifiers used in validation errors and JSON payloads.
const (
	FieldSlug   = "slug"
	FieldName   = "name"
	FieldLocale = "locale"
)

// Category is the raw storage row for a game category, base-locale fields
// plus all translation rows. It is what the repository returns and what the
// cache stores; handlers never see it directly.
type Category struct {
	ID             int       `json:"id"`
	ParentID       *int      `json:"parent_id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	SortOrder      int       `json:"sort_order"`
	IsEnabled      bool      `json:"is_enabled"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`

	Translations []Translation `json:"-"`
}

// Translation is one per-locale override of a category's display fields.
// Empty fields fall back to the base-locale values.
type Translation struct {
	CategoryID     int    `json:"-"`
	Locale         string `json:"locale"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

// TranslationLocale implements translate.Row.
func (translation Translation) TranslationLocale() string { return translation.Locale }

// View is a category resolved for one locale, with live game counts merged
// in. Views are value types built fresh on every cache read; callers may
// modify them freely without aliasing cached state.
type View struct {
	ID             int    `json:"id"`
	ParentID       *int   `json:"parent_id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	SortOrder      int    `json:"sort_order"`
	IsEnabled      bool   `json:"is_enabled"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	GameCount      int    `json:"game_count"`
}

// Node is a View with its children attached, for tree-shaped responses.
type Node struct {
	View
	Children []Node `json:"children"`
}
