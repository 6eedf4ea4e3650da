// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

/* TestTrendingScore covers component weighting and clamping. */
func TestTrendingScore(t *testing.T) {
	now := time.Now()

	// A brand-new game with saturated plays and a perfect rating scores 1.
	perfect := TrendingScore(now, now, 10000, 5.0)
	assert.InDelta(t, 1.0, perfect, 0.001)

	// A stale game keeps only its traction and rating components.
	stale := TrendingScore(now, now.Add(-365*24*time.Hour), 10000, 5.0)
	assert.InDelta(t, 0.6, stale, 0.001)

	// Zero plays contribute nothing, and negative inputs never push the
	// score below zero.
	floor := TrendingScore(now, now.Add(-365*24*time.Hour), 0, 0)
	assert.Equal(t, 0.0, floor)

	// Freshness decays linearly: a 15-day-old game keeps half the
	// freshness weight.
	half := TrendingScore(now, now.Add(-15*24*time.Hour), 0, 0)
	assert.InDelta(t, 0.2, half, 0.001)
}

/* TestTrendingScore_Ordering verifies fresh traction beats stale popularity. */
func TestTrendingScore_Ordering(t *testing.T) {
	now := time.Now()

	fresh := TrendingScore(now, now.Add(-24*time.Hour), 1000, 4.0)
	stalePopular := TrendingScore(now, now.Add(-90*24*time.Hour), 5000, 4.5)

	assert.Greater(t, fresh, stalePopular)
}

/* TestParseSort covers the fallback for unknown sort values. */
func TestParseSort(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSort("newest"))
	assert.Equal(t, SortName, ParseSort("name"))
	assert.Equal(t, SortRating, ParseSort("rating"))
	assert.Equal(t, SortPopular, ParseSort("popular"))
	assert.Equal(t, SortPopular, ParseSort(""))
	assert.Equal(t, SortPopular, ParseSort("garbage"))
}
