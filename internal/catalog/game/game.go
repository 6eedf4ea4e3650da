// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import "time"

// StatusPublished is the only status visible to the public catalog.
const StatusPublished = "PUBLISHED"

// Game is the raw storage row for a game, base-locale fields plus
// translations and association IDs. Handlers never see it directly; the
// query layer resolves it into a [View].
type Game struct {
	ID             int       `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Instructions   string    `json:"instructions"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	GameURL        string    `json:"game_url"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Status         string    `json:"status"`
	IsFeatured     bool      `json:"is_featured"`
	PlayCount      int64     `json:"play_count"`
	Rating         float64   `json:"rating"`
	RatingCount    int       `json:"rating_count"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	ReleasedAt     time.Time `json:"released_at"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`

	Translations   []Translation `json:"-"`
	CategoryIDs    []int         `json:"-"`
	MainCategoryID *int          `json:"-"`
	TagIDs         []int         `json:"-"`
}

// Translation is one per-locale override of a game's display fields.
type Translation struct {
	GameID         int    `json:"-"`
	Locale         string `json:"locale"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Instructions   string `json:"instructions"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

// TranslationLocale implements translate.Row.
func (translation Translation) TranslationLocale() string { return translation.Locale }

// View is a game resolved for one locale, decorated with category and tag
// display names from the reference caches.
type View struct {
	ID             int       `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Instructions   string    `json:"instructions"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	GameURL        string    `json:"game_url"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	IsFeatured     bool      `json:"is_featured"`
	PlayCount      int64     `json:"play_count"`
	Rating         float64   `json:"rating"`
	RatingCount    int       `json:"rating_count"`
	SEOTitle       string    `json:"seo_title"`
	SEODescription string    `json:"seo_description"`
	ReleasedAt     time.Time `json:"released_at"`

	MainCategory string   `json:"main_category"`
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags"`
}

// Sort enumerates the orderings a listing can be served in.
type Sort string

const (
	SortPopular Sort = "popular"
	SortNewest  Sort = "newest"
	SortName    Sort = "name"
	SortRating  Sort = "rating"
)

// ParseSort maps a raw query value onto a supported [Sort]. Unknown values
// fall back to [SortPopular] rather than erroring.
func ParseSort(raw string) Sort {
	switch Sort(raw) {
	case SortNewest, SortName, SortRating:
		return Sort(raw)
	default:
		return SortPopular
	}
}

// Filter narrows a game listing. Zero values mean "no constraint".
type Filter struct {
	CategoryID   int
	TagID        int
	Search       string
	FeaturedOnly bool
}
