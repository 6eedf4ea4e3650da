// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"math"
	"time"
)

// Trending score weights. Freshness and traction dominate; rating nudges.
const (
	trendingFreshnessWeight = 0.4
	trendingPlaysWeight     = 0.4
	trendingRatingWeight    = 0.2

	// trendingFreshnessWindow is the release age at which freshness hits zero.
	trendingFreshnessWindow = 30 * 24 * time.Hour

	// trendingPlaysCeiling is log10 of the play count that saturates the
	// traction component (10^4 plays).
	trendingPlaysCeiling = 4.0

	// trendingCandidateMultiplier sizes the candidate window relative to the
	// requested limit.
	trendingCandidateMultiplier = 3
)

// TrendingScore ranks a game for the trending listing.
//
// All three components are normalized to [0, 1] before weighting:
//
//   - freshness decays linearly from 1 at release to 0 after 30 days
//   - traction is log10(plays)/4, saturating at ten thousand plays
//   - rating is the 0..5 average scaled down
func TrendingScore(now, releasedAt time.Time, playCount int64, rating float64) float64 {
	freshness := 1 - float64(now.Sub(releasedAt))/float64(trendingFreshnessWindow)
	freshness = clamp01(freshness)

	traction := 0.0
	if playCount > 0 {
		traction = clamp01(math.Log10(float64(playCount)) / trendingPlaysCeiling)
	}

	quality := clamp01(rating / 5)

	return trendingFreshnessWeight*freshness +
		trendingPlaysWeight*traction +
		trendingRatingWeight*quality
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
