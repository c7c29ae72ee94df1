// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package superlatives

import (
	"fmt"
	"sort"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/engine"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// Builder derives the superlative categories from one engine pass.
type Builder struct {
	cfg config.EngineConfig
}

// NewBuilder creates a Builder with the given settings.
func NewBuilder(cfg config.EngineConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build computes the three superlative categories: user awards, film
// awards and the per-genre Aficionado awards. Films are identified by
// film ID throughout.
func (b *Builder) Build(out *engine.Output, films []models.Film) []models.SuperlativeCategory {
	return []models.SuperlativeCategory{
		{Category: "users", Superlatives: b.userSuperlatives(out)},
		{Category: "films", Superlatives: b.filmSuperlatives(out, films)},
		{Category: "genres", Superlatives: b.genreSuperlatives(out)},
	}
}

// userScores collects one scalar per user, skipping users for whom the
// extractor returns nil.
func userScores(out *engine.Output, extract func(*models.UserStats) *float64) map[string]float64 {
	scores := make(map[string]float64, len(out.UserStats))
	for username, stats := range out.UserStats {
		if v := extract(stats); v != nil {
			scores[username] = *v
		}
	}
	return scores
}

func (b *Builder) userSuperlatives(out *engine.Output) []models.Superlative {
	avgRating := userScores(out, func(s *models.UserStats) *float64 { return s.AvgRating })
	meanDiff := userScores(out, func(s *models.UserStats) *float64 { return s.MeanDiff })
	avgRuntime := userScores(out, func(s *models.UserStats) *float64 { return s.AvgRuntime })
	avgYear := userScores(out, func(s *models.UserStats) *float64 { return s.AvgYearWatched })

	// Pair awards score unordered pairs, labelled "a & b" with the
	// lexicographically smaller username first.
	pairDiffs := make(map[string]float64)
	out.Matrix.Pairs(func(lo, hi string, agreement models.PairwiseAgreement) {
		if agreement.NumShared < b.cfg.MinSharedFilms {
			return
		}
		pairDiffs[fmt.Sprintf("%s & %s", lo, hi)] = agreement.MeanAbsDiff
	})

	return []models.Superlative{
		newSuperlative("Positive Polly",
			"User with the highest average rating",
			Rank(avgRating, Descending, 1)),
		newSuperlative("Positive Polly (Comparative)",
			"User with the most positive average rating difference compared to other users",
			Rank(meanDiff, Descending, 1)),
		newSuperlative("Negative Nelly",
			"User with the lowest average rating",
			Rank(avgRating, Ascending, 1)),
		newSuperlative("Negative Nelly (Comparative)",
			"User with the most negative average rating difference compared to other users",
			Rank(meanDiff, Ascending, 1)),
		newSuperlative("BFFs",
			"Pair of users with the lowest mean absolute rating difference",
			Rank(pairDiffs, Ascending, 1)),
		newSuperlative("Enemies",
			"Pair of users with the highest mean absolute rating difference",
			Rank(pairDiffs, Descending, 1)),
		newSuperlative("Best Attention Span",
			"User with the highest average movie runtime",
			Rank(avgRuntime, Descending, 1)),
		newSuperlative("TikTok Brain",
			"User with the lowest average movie runtime",
			Rank(avgRuntime, Ascending, 1)),
		newSuperlative("Unc",
			"User with the lowest average movie release year",
			Rank(avgYear, Ascending, 1)),
		newSuperlative("Modernist",
			"User with the highest average movie release year",
			Rank(avgYear, Descending, 1)),
	}
}

func (b *Builder) filmSuperlatives(out *engine.Output, films []models.Film) []models.Superlative {
	avgRating := make(map[string]float64)
	stdevRating := make(map[string]float64)
	ratingDelta := make(map[string]float64)

	for i := range films {
		film := &films[i]
		stats, ok := out.FilmStats[film.FilmID]
		if !ok || stats.NumRatings < b.cfg.MinFilmRatings {
			continue
		}
		if stats.AvgRating != nil {
			avgRating[film.FilmID] = *stats.AvgRating
			// The delta awards need both a group average and a scraped
			// global average.
			if film.Metadata.AvgRating > 0 {
				ratingDelta[film.FilmID] = *stats.AvgRating - film.Metadata.AvgRating
			}
		}
		if stats.StdevRating != nil {
			stdevRating[film.FilmID] = *stats.StdevRating
		}
	}

	minDesc := fmt.Sprintf("(minimum %d ratings)", b.cfg.MinFilmRatings)
	return []models.Superlative{
		newSuperlative("Best Movie",
			"Film with the highest average rating "+minDesc,
			Rank(avgRating, Descending, 1)),
		newSuperlative("Worst Movie",
			"Film with the lowest average rating "+minDesc,
			Rank(avgRating, Ascending, 1)),
		newSuperlative("Most Underrated Movie",
			"Film with the highest positive rating difference from Letterboxd average",
			Rank(ratingDelta, Descending, 1)),
		newSuperlative("Most Overrated Movie",
			"Film with the highest negative rating difference from Letterboxd average",
			Rank(ratingDelta, Ascending, 1)),
		newSuperlative("Hit or Miss",
			"Film with the highest standard deviation in ratings",
			Rank(stdevRating, Descending, 1)),
	}
}

func (b *Builder) genreSuperlatives(out *engine.Output) []models.Superlative {
	// One award per genre from the configured universe, skipping genres
	// nobody has watched. Users score by their percentage for the genre;
	// a user with no watches in the genre is absent, not at 0%.
	byGenre := make(map[string]map[string]float64)
	for username, stats := range out.UserStats {
		for genre, gs := range stats.GenreStats {
			if gs.Count == 0 {
				continue
			}
			if byGenre[genre] == nil {
				byGenre[genre] = make(map[string]float64)
			}
			byGenre[genre][username] = gs.Percentage
		}
	}

	genres := make([]string, 0, len(byGenre))
	for genre := range byGenre {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	awards := make([]models.Superlative, 0, len(genres))
	for _, genre := range genres {
		awards = append(awards, newSuperlative(
			fmt.Sprintf("%s Aficionado", genre),
			fmt.Sprintf("User with the highest percentage of %s films in their watch history", genre),
			Rank(byGenre[genre], Descending, 1)))
	}
	return awards
}

func newSuperlative(name, description string, ranking Ranking) models.Superlative {
	return models.Superlative{
		Name:        name,
		Description: description,
		First:       ranking.First,
		FirstValue:  ranking.FirstValue,
		Second:      ranking.Second,
		SecondValue: ranking.SecondValue,
		Third:       ranking.Third,
		ThirdValue:  ranking.ThirdValue,
	}
}
