// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import (
	"sort"
	"strconv"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// ratingBuckets are the ten fixed half-point histogram keys. Every
// profile carries all ten, zeroed buckets included, so distributions
// line up across users.
var ratingBuckets = func() []string {
	keys := make([]string, 0, 10)
	for v := 0.5; v <= 5.0; v += 0.5 {
		keys = append(keys, strconv.FormatFloat(v, 'f', 1, 64))
	}
	return keys
}()

// buildUserStats computes one user's full statistical profile from the
// snapshot index and the pairwise matrix.
func buildUserStats(idx *index, matrix *Matrix, user *models.User) *models.UserStats {
	stats := &models.UserStats{
		RatingDistribution: make(map[string]int, len(ratingBuckets)),
	}
	for _, key := range ratingBuckets {
		stats.RatingDistribution[key] = 0
	}

	ratings := make([]float64, 0, len(user.Reviews))
	for _, r := range idx.userRatings[user.Username] {
		ratings = append(ratings, r)
		stats.RatingDistribution[strconv.FormatFloat(r, 'f', 1, 64)]++
	}

	stats.NumRatings = len(ratings)
	stats.AvgRating = mean(ratings)
	stats.MedianRating = median(ratings)
	stats.ModeRating = mode(ratings)
	stats.StdevRating = popStdev(ratings)

	// Watch-level aggregates run over every logged film, rated or not.
	watchedFilms := make(map[string]bool)
	countWatch := func(filmID string, isLiked bool) {
		if watchedFilms[filmID] {
			return
		}
		watchedFilms[filmID] = true
		stats.NumWatches++
		if isLiked {
			stats.NumLikes++
		}
	}
	for _, rev := range user.Reviews {
		countWatch(rev.FilmID, rev.IsLiked)
	}
	for _, w := range user.Watches {
		countWatch(w.FilmID, w.IsLiked)
	}
	stats.LikeRatio = ratio(stats.NumLikes, stats.NumWatches)

	// Metadata aggregates skip films whose metadata was never scraped.
	var runtimes, years []float64
	totalRuntime := 0
	for filmID := range watchedFilms {
		md, ok := idx.metadata[filmID]
		if !ok {
			continue
		}
		if md.Runtime > 0 {
			runtimes = append(runtimes, float64(md.Runtime))
			totalRuntime += md.Runtime
		}
		if md.Year > 0 {
			years = append(years, float64(md.Year))
		}
	}
	stats.AvgRuntime = mean(runtimes)
	if len(runtimes) > 0 {
		stats.TotalRuntime = &totalRuntime
	}
	stats.AvgYearWatched = mean(years)

	// Group agreement summary: mean over every counterpart sharing at
	// least one rated film. Counterparts are visited in sorted order so
	// the float summation order, and with it the output, never varies
	// between passes.
	stats.PairwiseAgreement = matrix.Neighbors(user.Username)
	counterparts := make([]string, 0, len(stats.PairwiseAgreement))
	for counterpart := range stats.PairwiseAgreement {
		counterparts = append(counterparts, counterpart)
	}
	sort.Strings(counterparts)
	var diffs, absDiffs []float64
	for _, counterpart := range counterparts {
		agreement := stats.PairwiseAgreement[counterpart]
		diffs = append(diffs, agreement.MeanDiff)
		absDiffs = append(absDiffs, agreement.MeanAbsDiff)
	}
	stats.MeanDiff = mean(diffs)
	stats.MeanAbsDiff = mean(absDiffs)

	stats.GenreStats = buildGenreStats(idx, user.Username, watchedFilms)

	return stats
}
