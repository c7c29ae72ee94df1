// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import "github.com/LetterBoxd-Stats/letterboxd-api/internal/models"

// buildFilmStats computes the group aggregates for one film from the
// snapshot index.
func buildFilmStats(idx *index, filmID string) models.FilmStats {
	ratings := make([]float64, 0, len(idx.ratings[filmID]))
	for _, r := range idx.ratings[filmID] {
		ratings = append(ratings, r)
	}

	numLikes := 0
	for _, isLiked := range idx.liked[filmID] {
		if isLiked {
			numLikes++
		}
	}

	numWatches := len(idx.watched[filmID])
	return models.FilmStats{
		NumRatings:  len(ratings),
		NumWatches:  numWatches,
		AvgRating:   mean(ratings),
		StdevRating: popStdev(ratings),
		NumLikes:    numLikes,
		LikeRatio:   ratio(numLikes, numWatches),
	}
}
