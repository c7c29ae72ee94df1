// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package predict

import (
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/engine"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// AgreementSource supplies pairwise agreement between two users. The
// second return value is false when the pair shares no rated films.
//
// engine.Matrix satisfies it for in-pass prediction; StatsAgreement
// adapts stored profiles for serving predictions between passes.
type AgreementSource interface {
	Agreement(user, other string) (models.PairwiseAgreement, bool)
}

// StatsAgreement reads agreement out of stored user profiles.
type StatsAgreement map[string]*models.UserStats

var _ AgreementSource = StatsAgreement(nil)

// Agreement implements AgreementSource from the owning user's stored
// pairwise map.
func (s StatsAgreement) Agreement(user, other string) (models.PairwiseAgreement, bool) {
	stats := s[user]
	if stats == nil || stats.PairwiseAgreement == nil {
		return models.PairwiseAgreement{}, false
	}
	agreement, ok := stats.PairwiseAgreement[other]
	return agreement, ok
}

// Predictor estimates a user's rating and like for an unseen film from
// the ratings of agreeing neighbors.
type Predictor struct {
	agreements AgreementSource

	// likeTieDefault resolves an exactly split weighted like vote.
	likeTieDefault bool
}

// NewPredictor creates a Predictor over the given agreement source.
func NewPredictor(agreements AgreementSource, likeTieDefault bool) *Predictor {
	return &Predictor{agreements: agreements, likeTieDefault: likeTieDefault}
}

// Predict estimates username's rating and like for the film.
//
// Neighbors are the film's raters, excluding the user themselves and
// anyone sharing no rated films with them; each neighbor's vote weighs
// 1/(1+mean_abs_diff). With no neighbors both predictions are nil.
// AlreadyWatched and AlreadyRated always reflect the film document; a
// film the user already rated echoes the logged rating and like back as
// the prediction.
func (p *Predictor) Predict(username string, film *models.Film) models.Prediction {
	pred := models.Prediction{
		Username: username,
		FilmID:   film.FilmID,
	}

	for _, rev := range film.Reviews {
		if rev.User != username {
			continue
		}
		pred.AlreadyWatched = true
		pred.AlreadyRated = true
		rating := rev.Rating
		liked := rev.IsLiked
		pred.PredictedRating = &rating
		pred.PredictedLike = &liked
		return pred
	}
	for _, w := range film.Watches {
		if w.User == username {
			pred.AlreadyWatched = true
			break
		}
	}

	var ratingSum, likeFor, likeAgainst, weightSum float64
	for _, rev := range film.Reviews {
		if rev.User == username || !engine.ValidRating(rev.Rating) {
			continue
		}
		agreement, ok := p.agreements.Agreement(username, rev.User)
		if !ok {
			continue
		}
		weight := 1 / (1 + agreement.MeanAbsDiff)
		weightSum += weight
		ratingSum += weight * rev.Rating
		if rev.IsLiked {
			likeFor += weight
		} else {
			likeAgainst += weight
		}
	}

	if weightSum == 0 {
		return pred
	}

	rating := ratingSum / weightSum
	pred.PredictedRating = &rating

	like := p.likeTieDefault
	switch {
	case likeFor > likeAgainst:
		like = true
	case likeFor < likeAgainst:
		like = false
	}
	pred.PredictedLike = &like

	return pred
}
