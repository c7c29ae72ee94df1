// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"net/http"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/recommend"
)

// filmFilterFromQuery parses the shared film filter vocabulary from
// query parameters. Numeric bounds use the _gte/_lte suffix convention;
// text and membership filters are comma-separated.
func filmFilterFromQuery(r *http.Request) recommend.Filter {
	q := r.URL.Query()
	return recommend.Filter{
		AvgRating:  rangeFromQuery(r, "avg_rating"),
		LikeRatio:  rangeFromQuery(r, "like_ratio"),
		NumLikes:   rangeFromQuery(r, "num_likes"),
		NumRatings: rangeFromQuery(r, "num_ratings"),
		NumWatches: rangeFromQuery(r, "num_watches"),

		MetaAvgRating: rangeFromQuery(r, "metadata.avg_rating"),
		Year:          rangeFromQuery(r, "metadata.year"),
		Runtime:       rangeFromQuery(r, "metadata.runtime"),

		Genres:      parseCommaSeparated(q.Get("genres")),
		Directors:   parseCommaSeparated(q.Get("directors")),
		Actors:      parseCommaSeparated(q.Get("actors")),
		Studios:     parseCommaSeparated(q.Get("studios")),
		Themes:      parseCommaSeparated(q.Get("themes")),
		Description: parseCommaSeparated(q.Get("description")),

		WatchedBy:    parseCommaSeparated(q.Get("watched_by")),
		NotWatchedBy: parseCommaSeparated(q.Get("not_watched_by")),
		RatedBy:      parseCommaSeparated(q.Get("rated_by")),
		NotRatedBy:   parseCommaSeparated(q.Get("not_rated_by")),
	}
}

func rangeFromQuery(r *http.Request, field string) recommend.Range {
	return recommend.Range{
		GTE: getFloatParam(r, field+"_gte"),
		LTE: getFloatParam(r, field+"_lte"),
	}
}
