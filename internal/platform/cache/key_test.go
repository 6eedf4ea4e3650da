// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ludora/internal/platform/cache"
)

/*
TestKey_Deterministic verifies that logically equal parameter sets produce
identical keys regardless of map iteration order.
*/
func TestKey_Deterministic(t *testing.T) {
	a := cache.Key("games.by_category", cache.Params{
		"slug":   "action",
		"locale": "fr",
		"page":   2,
		"limit":  24,
	})
	b := cache.Key("games.by_category", cache.Params{
		"limit":  24,
		"page":   2,
		"locale": "fr",
		"slug":   "action",
	})

	assert.Equal(t, a, b)
}

/*
TestKey_ParameterSensitivity verifies that any differing parameter yields a
different key.
*/
func TestKey_ParameterSensitivity(t *testing.T) {
	base := cache.Params{"locale": "en", "page": 1, "limit": 24, "disabled": false}

	variants := []cache.Params{
		{"locale": "fr", "page": 1, "limit": 24, "disabled": false},
		{"locale": "en", "page": 2, "limit": 24, "disabled": false},
		{"locale": "en", "page": 1, "limit": 12, "disabled": false},
		{"locale": "en", "page": 1, "limit": 24, "disabled": true},
	}

	baseKey := cache.Key("op", base)
	for _, v := range variants {
		assert.NotEqual(t, baseKey, cache.Key("op", v))
	}

	// Same parameters under a different operation name must not collide.
	assert.NotEqual(t, baseKey, cache.Key("other", base))
}

/*
TestKey_ValueFormats covers the supported parameter value kinds.
*/
func TestKey_ValueFormats(t *testing.T) {
	tests := []struct {
		name   string
		params cache.Params
		want   string
	}{
		{"no_params", nil, "op"},
		{"string", cache.Params{"q": "ninja"}, "op::q=ninja"},
		{"bool", cache.Params{"all": true}, "op::all=true"},
		{"int", cache.Params{"page": 3}, "op::page=3"},
		{"nil", cache.Params{"parent": nil}, "op::parent=nil"},
		{"string_slice", cache.Params{"tags": []string{"ninja", "retro"}}, "op::tags=[ninja,retro]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cache.Key("op", tt.params))
		})
	}
}

/*
TestKey_SeparatorInValue verifies that caller-controlled string values cannot
impersonate key structure. A search term embedding the separator must not
collide with a key whose segments carry those pairs for real.
*/
func TestKey_SeparatorInValue(t *testing.T) {
	forged := cache.Key("games.search", cache.Params{"q": "ninja::locale=fr"})
	genuine := cache.Key("games.search", cache.Params{"q": "ninja", "locale": "fr"})
	assert.NotEqual(t, forged, genuine)

	// Same for slice elements: a comma inside one element must not read as
	// two elements.
	single := cache.Key("op", cache.Params{"tags": []string{"ninja,retro"}})
	pair := cache.Key("op", cache.Params{"tags": []string{"ninja", "retro"}})
	assert.NotEqual(t, single, pair)

	// Escaping stays deterministic.
	assert.Equal(t, forged, cache.Key("games.search", cache.Params{"q": "ninja::locale=fr"}))
}
