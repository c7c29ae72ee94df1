// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package models

// User is the users-collection document: the scraped diary plus the
// derived statistical profile.
type User struct {
	Username string     `json:"username" bson:"username"`
	Reviews  []Review   `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Watches  []Watch    `json:"watches,omitempty" bson:"watches,omitempty"`
	Stats    *UserStats `json:"stats,omitempty" bson:"stats,omitempty"`
}

// UserStats is one user's derived statistical profile. It is produced
// fresh on every engine pass and never partially mutated.
//
// Nullable aggregates are pointers: nil means "undefined for this user"
// (no ratings, no watches, no overlap), which is distinct from zero.
type UserStats struct {
	// NumWatches counts all logged films, rated or not.
	NumWatches int `json:"num_watches" bson:"num_watches"`

	// NumRatings counts reviews carrying a rating.
	NumRatings int `json:"num_ratings" bson:"num_ratings"`

	AvgRating    *float64 `json:"avg_rating" bson:"avg_rating"`
	MedianRating *float64 `json:"median_rating" bson:"median_rating"`
	ModeRating   *float64 `json:"mode_rating" bson:"mode_rating"`

	// StdevRating is the population standard deviation of the user's
	// ratings; nil when fewer than two ratings exist.
	StdevRating *float64 `json:"stdev_rating" bson:"stdev_rating"`

	// MeanDiff and MeanAbsDiff summarize this user's rating differences
	// against every other group member over shared rated films.
	MeanDiff    *float64 `json:"mean_diff" bson:"mean_diff"`
	MeanAbsDiff *float64 `json:"mean_abs_diff" bson:"mean_abs_diff"`

	// PairwiseAgreement maps every other username this user shares at
	// least one rated film with to the pair's agreement metrics. Pairs
	// with no shared rated films are absent, not zeroed.
	PairwiseAgreement map[string]PairwiseAgreement `json:"pairwise_agreement" bson:"pairwise_agreement"`

	// RatingDistribution buckets ratings into the ten fixed half-point
	// values "0.5" through "5.0". Bucket counts sum to NumRatings.
	RatingDistribution map[string]int `json:"rating_distribution" bson:"rating_distribution"`

	NumLikes int `json:"num_likes" bson:"num_likes"`

	// LikeRatio is NumLikes / NumWatches; nil when NumWatches is zero.
	LikeRatio *float64 `json:"like_ratio" bson:"like_ratio"`

	// GenreStats holds per-genre profiles; genres the user has never
	// watched are omitted.
	GenreStats map[string]GenreStat `json:"genre_stats" bson:"genre_stats"`

	// AvgRuntime and AvgYearWatched aggregate film metadata across all
	// watched films; films missing the relevant metadata are excluded.
	AvgRuntime     *float64 `json:"avg_runtime" bson:"avg_runtime"`
	TotalRuntime   *int     `json:"total_runtime" bson:"total_runtime"`
	AvgYearWatched *float64 `json:"avg_year_watched" bson:"avg_year_watched"`
}

// PairwiseAgreement holds rating agreement metrics between two users over
// the films both have rated.
//
// MeanAbsDiff and NumShared are symmetric between the two directions of a
// pair; MeanDiff is stored from the owning user's perspective and negates
// for the reverse direction.
type PairwiseAgreement struct {
	MeanDiff    float64 `json:"mean_diff" bson:"mean_diff"`
	MeanAbsDiff float64 `json:"mean_abs_diff" bson:"mean_abs_diff"`

	// NumShared is the number of films both users rated.
	NumShared int `json:"num_shared" bson:"num_shared"`
}

// GenreStat is one user's profile for a single genre.
type GenreStat struct {
	// Count is the number of the user's watched-or-rated films tagged
	// with the genre. A film tagged with several genres counts once in
	// each of them.
	Count int `json:"count" bson:"count"`

	// Percentage is 100 * Count / NumWatches, in [0, 100].
	Percentage float64 `json:"percentage" bson:"percentage"`

	// AvgRating and Stddev restrict the user's rating aggregates to
	// films tagged with the genre.
	AvgRating *float64 `json:"avg_rating" bson:"avg_rating"`
	Stddev    *float64 `json:"stddev" bson:"stddev"`

	NumLikes  int      `json:"num_likes" bson:"num_likes"`
	LikeRatio *float64 `json:"like_ratio" bson:"like_ratio"`
}
