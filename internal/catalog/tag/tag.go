// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "time"

// Tag is the raw storage row for a game tag, base-locale fields plus all
// translation rows.
type Tag struct {
	ID          int       `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"-"`

	Translations []Translation `json:"-"`
}

// Translation is one per-locale override of a tag's display fields.
type Translation struct {
	TagID       int    `json:"-"`
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TranslationLocale implements translate.Row.
func (translation Translation) TranslationLocale() string { return translation.Locale }

// View is a tag resolved for one locale with its game count merged in.
type View struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsEnabled   bool   `json:"is_enabled"`
	GameCount   int    `json:"game_count"`
}
