// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package predict

import (
	"math"
	"testing"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

func agreementFixture() StatsAgreement {
	return StatsAgreement{
		"alice": {PairwiseAgreement: map[string]models.PairwiseAgreement{
			"bob":   {MeanAbsDiff: 0.5, MeanDiff: 0.5, NumShared: 4},
			"carol": {MeanAbsDiff: 2, MeanDiff: -2, NumShared: 3},
		}},
	}
}

func TestPredictWeightedAverage(t *testing.T) {
	film := &models.Film{
		FilmID: "dune-2021",
		Reviews: []models.Review{
			{FilmID: "dune-2021", User: "bob", Rating: 4, IsLiked: true},
			{FilmID: "dune-2021", User: "carol", Rating: 1, IsLiked: false},
		},
	}
	pred := NewPredictor(agreementFixture(), false).Predict("alice", film)

	if pred.AlreadyWatched || pred.AlreadyRated {
		t.Errorf("already flags = %v/%v, want false/false", pred.AlreadyWatched, pred.AlreadyRated)
	}
	if pred.PredictedRating == nil {
		t.Fatal("expected a predicted rating")
	}
	// Weights: bob 1/1.5, carol 1/3.
	wBob, wCarol := 1/1.5, 1/3.0
	want := (wBob*4 + wCarol*1) / (wBob + wCarol)
	if math.Abs(*pred.PredictedRating-want) > 1e-12 {
		t.Errorf("PredictedRating = %v, want %v", *pred.PredictedRating, want)
	}
	// Bob's like vote outweighs carol's dislike.
	if pred.PredictedLike == nil || !*pred.PredictedLike {
		t.Errorf("PredictedLike = %v, want true", pred.PredictedLike)
	}
}

func TestPredictNoNeighbors(t *testing.T) {
	film := &models.Film{
		FilmID: "obscure",
		Reviews: []models.Review{
			// dave shares no rated films with alice.
			{FilmID: "obscure", User: "dave", Rating: 5},
		},
		Watches: []models.Watch{
			{FilmID: "obscure", User: "alice"},
		},
	}
	pred := NewPredictor(agreementFixture(), false).Predict("alice", film)

	if pred.PredictedRating != nil || pred.PredictedLike != nil {
		t.Errorf("predictions = %v/%v, want nil/nil", pred.PredictedRating, pred.PredictedLike)
	}
	if !pred.AlreadyWatched {
		t.Error("AlreadyWatched = false, want true (logged watch)")
	}
	if pred.AlreadyRated {
		t.Error("AlreadyRated = true, want false")
	}
}

func TestPredictEchoesOwnRating(t *testing.T) {
	film := &models.Film{
		FilmID: "parasite-2019",
		Reviews: []models.Review{
			{FilmID: "parasite-2019", User: "alice", Rating: 4.5, IsLiked: true},
			{FilmID: "parasite-2019", User: "bob", Rating: 2},
		},
	}
	pred := NewPredictor(agreementFixture(), false).Predict("alice", film)

	if !pred.AlreadyWatched || !pred.AlreadyRated {
		t.Errorf("already flags = %v/%v, want true/true", pred.AlreadyWatched, pred.AlreadyRated)
	}
	if pred.PredictedRating == nil || *pred.PredictedRating != 4.5 {
		t.Errorf("PredictedRating = %v, want logged 4.5", pred.PredictedRating)
	}
	if pred.PredictedLike == nil || !*pred.PredictedLike {
		t.Errorf("PredictedLike = %v, want logged true", pred.PredictedLike)
	}
}

func TestPredictLikeTieUsesDefault(t *testing.T) {
	agreements := StatsAgreement{
		"alice": {PairwiseAgreement: map[string]models.PairwiseAgreement{
			"bob":   {MeanAbsDiff: 1, NumShared: 2},
			"carol": {MeanAbsDiff: 1, NumShared: 2},
		}},
	}
	film := &models.Film{
		FilmID: "split",
		Reviews: []models.Review{
			{FilmID: "split", User: "bob", Rating: 4, IsLiked: true},
			{FilmID: "split", User: "carol", Rating: 2, IsLiked: false},
		},
	}

	for _, tieDefault := range []bool{false, true} {
		pred := NewPredictor(agreements, tieDefault).Predict("alice", film)
		if pred.PredictedLike == nil || *pred.PredictedLike != tieDefault {
			t.Errorf("tie with default %v: PredictedLike = %v", tieDefault, pred.PredictedLike)
		}
	}
}

func TestPredictSkipsInvalidNeighborRatings(t *testing.T) {
	film := &models.Film{
		FilmID: "glitch",
		Reviews: []models.Review{
			{FilmID: "glitch", User: "bob", Rating: 3.7},
		},
	}
	pred := NewPredictor(agreementFixture(), false).Predict("alice", film)
	if pred.PredictedRating != nil {
		t.Errorf("PredictedRating = %v, want nil (off-scale neighbor vote)", *pred.PredictedRating)
	}
}
