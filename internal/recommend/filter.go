// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package recommend

import (
	"strings"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// Range is an optional inclusive numeric interval. A nil bound is open.
// A film whose underlying field is unset fails any bounded Range.
type Range struct {
	GTE *float64 `json:"gte,omitempty"`
	LTE *float64 `json:"lte,omitempty"`
}

// bounded reports whether the range constrains anything.
func (r Range) bounded() bool {
	return r.GTE != nil || r.LTE != nil
}

// contains reports whether v satisfies both bounds.
func (r Range) contains(v float64) bool {
	if r.GTE != nil && v < *r.GTE {
		return false
	}
	if r.LTE != nil && v > *r.LTE {
		return false
	}
	return true
}

// Filter is the film filter vocabulary, shared between the film listing
// and the recommendation candidate selection.
//
// Numeric ranges apply to group aggregates (AvgRating, LikeRatio,
// NumLikes, NumRatings, NumWatches) and scraped metadata (MetaAvgRating,
// Year, Runtime). Text filters are case-insensitive: list fields match
// when any element contains every term, Description when it contains
// every term, Genres when every term equals a tag. Membership filters
// require the named users to appear (or not) in the film's watches or
// reviews.
type Filter struct {
	AvgRating  Range `json:"avg_rating,omitempty"`
	LikeRatio  Range `json:"like_ratio,omitempty"`
	NumLikes   Range `json:"num_likes,omitempty"`
	NumRatings Range `json:"num_ratings,omitempty"`
	NumWatches Range `json:"num_watches,omitempty"`

	MetaAvgRating Range `json:"metadata.avg_rating,omitempty"`
	Year          Range `json:"metadata.year,omitempty"`
	Runtime       Range `json:"metadata.runtime,omitempty"`

	Genres      []string `json:"genres,omitempty"`
	Directors   []string `json:"directors,omitempty"`
	Actors      []string `json:"actors,omitempty"`
	Studios     []string `json:"studios,omitempty"`
	Themes      []string `json:"themes,omitempty"`
	Description []string `json:"description,omitempty"`

	WatchedBy    []string `json:"watched_by,omitempty"`
	NotWatchedBy []string `json:"not_watched_by,omitempty"`
	RatedBy      []string `json:"rated_by,omitempty"`
	NotRatedBy   []string `json:"not_rated_by,omitempty"`
}

// Matches reports whether the film passes every configured clause.
func (f *Filter) Matches(film *models.Film) bool {
	if !f.matchesNumeric(film) {
		return false
	}
	if !f.matchesText(&film.Metadata) {
		return false
	}
	return f.matchesMembership(film)
}

func (f *Filter) matchesNumeric(film *models.Film) bool {
	if f.AvgRating.bounded() {
		if film.AvgRating == nil || !f.AvgRating.contains(*film.AvgRating) {
			return false
		}
	}
	if f.LikeRatio.bounded() {
		if film.LikeRatio == nil || !f.LikeRatio.contains(*film.LikeRatio) {
			return false
		}
	}
	if !f.NumLikes.contains(float64(film.NumLikes)) ||
		!f.NumRatings.contains(float64(film.NumRatings)) ||
		!f.NumWatches.contains(float64(film.NumWatches)) {
		return false
	}

	if f.MetaAvgRating.bounded() {
		if film.Metadata.AvgRating == 0 || !f.MetaAvgRating.contains(film.Metadata.AvgRating) {
			return false
		}
	}
	if f.Year.bounded() {
		if film.Metadata.Year == 0 || !f.Year.contains(float64(film.Metadata.Year)) {
			return false
		}
	}
	if f.Runtime.bounded() {
		if film.Metadata.Runtime == 0 || !f.Runtime.contains(float64(film.Metadata.Runtime)) {
			return false
		}
	}
	return true
}

func (f *Filter) matchesText(md *models.FilmMetadata) bool {
	for _, term := range f.Genres {
		if !containsTag(md.Genres, term) {
			return false
		}
	}
	if len(f.Directors) > 0 && !anyContainsAllTerms(md.Directors, f.Directors) {
		return false
	}
	if len(f.Actors) > 0 && !anyContainsAllTerms(md.Actors, f.Actors) {
		return false
	}
	if len(f.Studios) > 0 && !anyContainsAllTerms(md.Studios, f.Studios) {
		return false
	}
	if len(f.Themes) > 0 && !anyContainsAllTerms(md.Themes, f.Themes) {
		return false
	}
	if len(f.Description) > 0 {
		description := strings.ToLower(md.Description)
		for _, term := range f.Description {
			if !strings.Contains(description, strings.ToLower(term)) {
				return false
			}
		}
	}
	return true
}

func (f *Filter) matchesMembership(film *models.Film) bool {
	for _, user := range f.WatchedBy {
		if !filmWatchedBy(film, user) {
			return false
		}
	}
	for _, user := range f.NotWatchedBy {
		if filmWatchedBy(film, user) {
			return false
		}
	}
	for _, user := range f.RatedBy {
		if !filmRatedBy(film, user) {
			return false
		}
	}
	for _, user := range f.NotRatedBy {
		if filmRatedBy(film, user) {
			return false
		}
	}
	return true
}

// containsTag reports a case-insensitive exact membership of term in tags.
func containsTag(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, term) {
			return true
		}
	}
	return false
}

// anyContainsAllTerms reports whether any single item contains every
// term, case-insensitively.
func anyContainsAllTerms(items, terms []string) bool {
	for _, item := range items {
		lowered := strings.ToLower(item)
		all := true
		for _, term := range terms {
			if !strings.Contains(lowered, strings.ToLower(term)) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func filmWatchedBy(film *models.Film, username string) bool {
	if filmRatedBy(film, username) {
		return true
	}
	for _, w := range film.Watches {
		if w.User == username {
			return true
		}
	}
	return false
}

func filmRatedBy(film *models.Film, username string) bool {
	for _, rev := range film.Reviews {
		if rev.User == username {
			return true
		}
	}
	return false
}
