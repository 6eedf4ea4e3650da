// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ludora/internal/catalog/translate"
)

type testRow struct {
	locale      string
	name        string
	description string
}

func (row testRow) TranslationLocale() string { return row.locale }

/* TestField covers the fallback ladder for a single display field. */
func TestField(t *testing.T) {
	rows := []testRow{
		{locale: "fr", name: "Course Folle", description: ""},
		{locale: "ja", name: "", description: "レースゲーム"},
	}

	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{"translated_locale", "fr", "Course Folle"},
		{"base_locale_skips_rows", "en", "Mad Racer"},
		{"missing_locale_falls_back", "de", "Mad Racer"},
		{"empty_translation_falls_back", "ja", "Mad Racer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate.Field(rows, tt.locale, "en",
				func(r testRow) string { return r.name }, "Mad Racer")
			assert.Equal(t, tt.want, got)
		})
	}
}

/* TestField_NoRows verifies resolution is total with no translations at all. */
func TestField_NoRows(t *testing.T) {
	got := translate.Field(nil, "fr", "en",
		func(r testRow) string { return r.name }, "Mad Racer")
	assert.Equal(t, "Mad Racer", got)
}

/*
TestField_RedundantBaseRow verifies that a stray row in the base locale is
ignored: the base value always wins for its own locale.
*/
func TestField_RedundantBaseRow(t *testing.T) {
	rows := []testRow{{locale: "en", name: "Stale Copy"}}

	got := translate.Field(rows, "en", "en",
		func(r testRow) string { return r.name }, "Mad Racer")
	assert.Equal(t, "Mad Racer", got)
}

/* TestPick covers row lookup for multi-field resolution. */
func TestPick(t *testing.T) {
	rows := []testRow{
		{locale: "fr", name: "Course Folle", description: "Jeu de course"},
	}

	row, ok := translate.Pick(rows, "fr", "en")
	assert.True(t, ok)
	assert.Equal(t, "Course Folle", translate.Or(row.name, "Mad Racer"))
	assert.Equal(t, "Jeu de course", translate.Or(row.description, "A racing game"))

	_, ok = translate.Pick(rows, "de", "en")
	assert.False(t, ok)

	// Base locale never picks a row, even if one exists.
	_, ok = translate.Pick(append(rows, testRow{locale: "en"}), "en", "en")
	assert.False(t, ok)
}

/* TestOr covers empty-string fallback. */
func TestOr(t *testing.T) {
	assert.Equal(t, "value", translate.Or("value", "base"))
	assert.Equal(t, "base", translate.Or("", "base"))
}
