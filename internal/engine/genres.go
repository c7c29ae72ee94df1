// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import "github.com/LetterBoxd-Stats/letterboxd-api/internal/models"

// buildGenreStats computes one user's per-genre profile over the films
// they logged. A film tagged with several genres counts once in each;
// tags outside the configured universe are ignored. Genres the user has
// never watched are omitted from the result.
func buildGenreStats(idx *index, username string, watchedFilms map[string]bool) map[string]models.GenreStat {
	type accumulator struct {
		count    int
		numLikes int
		ratings  []float64
	}
	byGenre := make(map[string]*accumulator)

	for filmID := range watchedFilms {
		md, ok := idx.metadata[filmID]
		if !ok {
			continue
		}
		for _, genre := range md.Genres {
			if _, allowed := idx.genres[genre]; !allowed {
				continue
			}
			acc := byGenre[genre]
			if acc == nil {
				acc = &accumulator{}
				byGenre[genre] = acc
			}
			acc.count++
			if idx.liked[filmID][username] {
				acc.numLikes++
			}
			if r, rated := idx.userRatings[username][filmID]; rated {
				acc.ratings = append(acc.ratings, r)
			}
		}
	}

	if len(byGenre) == 0 {
		return nil
	}

	numWatches := len(watchedFilms)
	stats := make(map[string]models.GenreStat, len(byGenre))
	for genre, acc := range byGenre {
		stats[genre] = models.GenreStat{
			Count:      acc.count,
			Percentage: 100 * float64(acc.count) / float64(numWatches),
			AvgRating:  mean(acc.ratings),
			Stddev:     popStdev(acc.ratings),
			NumLikes:   acc.numLikes,
			LikeRatio:  ratio(acc.numLikes, acc.count),
		}
	}
	return stats
}
