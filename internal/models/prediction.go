// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package models

// Prediction is a per-(user, film) rating and like estimate.
//
// PredictedRating and PredictedLike are nil when the user has no rating
// neighbors for the film. AlreadyWatched and AlreadyRated are membership
// checks against the user's own diary and are never predicted.
type Prediction struct {
	Username string `json:"username" bson:"user"`
	FilmID   string `json:"film_id" bson:"film_id"`

	PredictedRating *float64 `json:"predicted_rating" bson:"predicted_rating"`
	PredictedLike   *bool    `json:"predicted_like" bson:"predicted_like"`

	AlreadyWatched bool `json:"already_watched" bson:"already_watched"`
	AlreadyRated   bool `json:"already_rated" bson:"already_rated"`
}

// Recommendation is one ranked candidate film for a group of watchers.
type Recommendation struct {
	FilmID    string `json:"film_id"`
	FilmTitle string `json:"film_title"`
	FilmLink  string `json:"film_link,omitempty"`

	// AvgPredictedRating is the mean of the non-nil predicted ratings
	// across the group's watchers.
	AvgPredictedRating float64 `json:"avg_predicted_rating"`

	// LetterboxdRating is the global average rating from film metadata.
	LetterboxdRating float64 `json:"avg_letterboxd_rating,omitempty"`

	Metadata FilmMetadata `json:"metadata"`

	// PredictedRatings maps each watcher to their individual predicted
	// rating; nil entries mean no prediction was possible.
	PredictedRatings map[string]*float64 `json:"predicted_ratings"`
}
