// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package models

// Review is a single rated watch scraped from a user's Letterboxd diary.
// At most one review exists per (user, film); a film never appears as both
// a Review and a Watch for the same user.
type Review struct {
	// FilmID is the Letterboxd film slug (e.g. "parasite-2019").
	FilmID string `json:"film_id" bson:"film_id"`

	// User is the username of the reviewer.
	User string `json:"user" bson:"user"`

	// Rating is the star rating on the half-point scale 0.5-5.0.
	Rating float64 `json:"rating" bson:"rating"`

	// IsLiked reports whether the user pressed the heart.
	IsLiked bool `json:"is_liked" bson:"is_liked"`
}

// Watch is a logged watch without a numeric rating.
type Watch struct {
	FilmID  string `json:"film_id" bson:"film_id"`
	User    string `json:"user" bson:"user"`
	IsLiked bool   `json:"is_liked" bson:"is_liked"`
}

// FilmMetadata is externally scraped film metadata, read-only to the
// stats engine. Zero values mean the field was not scraped.
type FilmMetadata struct {
	// Genres the film is tagged with on Letterboxd.
	Genres []string `json:"genres" bson:"genres"`

	// Year is the release year.
	Year int `json:"year,omitempty" bson:"year,omitempty"`

	// Runtime is the runtime in minutes.
	Runtime int `json:"runtime,omitempty" bson:"runtime,omitempty"`

	// AvgRating is the global Letterboxd average rating.
	AvgRating float64 `json:"avg_rating,omitempty" bson:"avg_rating,omitempty"`

	Directors   []string `json:"directors,omitempty" bson:"directors,omitempty"`
	Actors      []string `json:"actors,omitempty" bson:"actors,omitempty"`
	Studios     []string `json:"studios,omitempty" bson:"studios,omitempty"`
	Themes      []string `json:"themes,omitempty" bson:"themes,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
}

// FilmStats holds the group-level aggregates for one film, recomputed
// wholesale on every engine pass.
type FilmStats struct {
	// NumRatings is the number of group reviews carrying a rating.
	NumRatings int `json:"num_ratings" bson:"num_ratings"`

	// NumWatches counts all group interactions, rated or not.
	NumWatches int `json:"num_watches" bson:"num_watches"`

	// AvgRating is the group mean rating; nil when nobody rated the film.
	AvgRating *float64 `json:"avg_rating" bson:"avg_rating"`

	// StdevRating is the population stdev of group ratings; nil when
	// fewer than two ratings exist.
	StdevRating *float64 `json:"stdev_rating" bson:"stdev_rating"`

	NumLikes int `json:"num_likes" bson:"num_likes"`

	// LikeRatio is NumLikes / NumWatches; nil when NumWatches is zero.
	LikeRatio *float64 `json:"like_ratio" bson:"like_ratio"`
}

// Film is the films-collection document: identity, scraped metadata, the
// group's interactions and the derived aggregates.
type Film struct {
	FilmID    string       `json:"film_id" bson:"film_id"`
	FilmTitle string       `json:"film_title" bson:"film_title"`
	FilmLink  string       `json:"film_link,omitempty" bson:"film_link,omitempty"`
	Metadata  FilmMetadata `json:"metadata" bson:"metadata"`
	Reviews   []Review     `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Watches   []Watch      `json:"watches,omitempty" bson:"watches,omitempty"`

	FilmStats `bson:",inline"`
}
