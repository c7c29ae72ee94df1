// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/predict"
)

var (
	// ErrNoWatchers indicates a request without any watcher usernames.
	ErrNoWatchers = errors.New("at least one watcher is required")

	// ErrOverrideNotWatcher indicates an ok_to_have_watched user outside
	// the watcher set.
	ErrOverrideNotWatcher = errors.New("ok_to_have_watched user must be a watcher")

	// ErrNegativeOffset indicates a negative pagination offset.
	ErrNegativeOffset = errors.New("offset must be non-negative")
)

// Request describes one recommendation query.
type Request struct {
	// Watchers are the users the recommendation is for.
	Watchers []string

	// OKToHaveWatched is the subset of watchers allowed to have already
	// seen a candidate. AllOK widens it to every watcher.
	OKToHaveWatched []string
	AllOK           bool

	// MaxOKToHaveWatched bounds how many override-set watchers may have
	// already seen a candidate before it is disqualified anyway.
	MaxOKToHaveWatched int

	// Filter narrows the candidate set before watch checks.
	Filter Filter

	// NumRecs and Offset paginate the ranked result.
	NumRecs int
	Offset  int
}

// Validate checks the request's structural constraints.
func (r *Request) Validate() error {
	if len(r.Watchers) == 0 {
		return ErrNoWatchers
	}
	if r.Offset < 0 {
		return ErrNegativeOffset
	}
	watchers := make(map[string]struct{}, len(r.Watchers))
	for _, w := range r.Watchers {
		watchers[w] = struct{}{}
	}
	for _, u := range r.OKToHaveWatched {
		if _, ok := watchers[u]; !ok {
			return fmt.Errorf("user %q: %w", u, ErrOverrideNotWatcher)
		}
	}
	return nil
}

// overrideSet resolves the effective override usernames.
func (r *Request) overrideSet() map[string]struct{} {
	override := make(map[string]struct{})
	if r.AllOK {
		for _, w := range r.Watchers {
			override[w] = struct{}{}
		}
		return override
	}
	for _, u := range r.OKToHaveWatched {
		override[u] = struct{}{}
	}
	return override
}

// Recommender ranks candidate films for a group of watchers by their
// aggregate predicted rating.
type Recommender struct {
	predictor *predict.Predictor
}

// NewRecommender creates a Recommender over the given predictor.
func NewRecommender(predictor *predict.Predictor) *Recommender {
	return &Recommender{predictor: predictor}
}

// Recommend filters and ranks films for the request.
//
// A candidate survives when it passes the metadata filters, no watcher
// outside the override set has seen it, and at most MaxOKToHaveWatched
// override watchers have. Survivors rank by the mean of the non-nil
// predicted ratings across watchers, descending, with ties broken by
// ascending film ID; candidates with no prediction for any watcher are
// dropped. Offset and NumRecs slice the ranked list.
func (r *Recommender) Recommend(films []models.Film, req *Request) ([]models.Recommendation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	override := req.overrideSet()

	var ranked []models.Recommendation
	for i := range films {
		film := &films[i]
		if !req.Filter.Matches(film) {
			continue
		}
		if !passesWatchedRules(film, req.Watchers, override, req.MaxOKToHaveWatched) {
			continue
		}

		predictions := make(map[string]*float64, len(req.Watchers))
		var sum float64
		n := 0
		for _, watcher := range req.Watchers {
			pred := r.predictor.Predict(watcher, film)
			predictions[watcher] = pred.PredictedRating
			if pred.PredictedRating != nil {
				sum += *pred.PredictedRating
				n++
			}
		}
		if n == 0 {
			continue
		}

		ranked = append(ranked, models.Recommendation{
			FilmID:             film.FilmID,
			FilmTitle:          film.FilmTitle,
			FilmLink:           film.FilmLink,
			AvgPredictedRating: sum / float64(n),
			LetterboxdRating:   film.Metadata.AvgRating,
			Metadata:           film.Metadata,
			PredictedRatings:   predictions,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgPredictedRating != ranked[j].AvgPredictedRating {
			return ranked[i].AvgPredictedRating > ranked[j].AvgPredictedRating
		}
		return ranked[i].FilmID < ranked[j].FilmID
	})

	if req.Offset >= len(ranked) {
		return []models.Recommendation{}, nil
	}
	ranked = ranked[req.Offset:]
	if req.NumRecs > 0 && req.NumRecs < len(ranked) {
		ranked = ranked[:req.NumRecs]
	}
	return ranked, nil
}

// passesWatchedRules applies the watcher inclusion-exclusion policy.
func passesWatchedRules(film *models.Film, watchers []string, override map[string]struct{}, maxOK int) bool {
	overrideWatched := 0
	for _, watcher := range watchers {
		if !filmWatchedBy(film, watcher) {
			continue
		}
		if _, ok := override[watcher]; !ok {
			return false
		}
		overrideWatched++
	}
	return overrideWatched <= maxOK
}
