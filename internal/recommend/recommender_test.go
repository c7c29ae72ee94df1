// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package recommend

import (
	"errors"
	"testing"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/predict"
)

// recommenderFixture gives x and y agreement with rater "critic" so
// every unseen film gets a prediction equal to critic's rating.
func recommenderFixture() *Recommender {
	agreements := predict.StatsAgreement{
		"x": {PairwiseAgreement: map[string]models.PairwiseAgreement{
			"critic": {MeanAbsDiff: 0.5, NumShared: 5},
		}},
		"y": {PairwiseAgreement: map[string]models.PairwiseAgreement{
			"critic": {MeanAbsDiff: 1, NumShared: 5},
		}},
	}
	return NewRecommender(predict.NewPredictor(agreements, false))
}

func candidateFilm(filmID string, criticRating float64, watchedBy ...string) models.Film {
	film := models.Film{
		FilmID:    filmID,
		FilmTitle: filmID,
		Reviews: []models.Review{
			{FilmID: filmID, User: "critic", Rating: criticRating},
		},
	}
	for _, user := range watchedBy {
		film.Watches = append(film.Watches, models.Watch{FilmID: filmID, User: user})
	}
	return film
}

func TestRecommendValidatesRequest(t *testing.T) {
	rec := recommenderFixture()

	_, err := rec.Recommend(nil, &Request{})
	if !errors.Is(err, ErrNoWatchers) {
		t.Errorf("empty watchers error = %v, want ErrNoWatchers", err)
	}

	_, err = rec.Recommend(nil, &Request{
		Watchers:        []string{"x"},
		OKToHaveWatched: []string{"y"},
	})
	if !errors.Is(err, ErrOverrideNotWatcher) {
		t.Errorf("override outside watchers error = %v, want ErrOverrideNotWatcher", err)
	}

	_, err = rec.Recommend(nil, &Request{Watchers: []string{"x"}, Offset: -1})
	if !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("negative offset error = %v, want ErrNegativeOffset", err)
	}
}

func TestRecommendWatchedExclusion(t *testing.T) {
	// With watchers x and y, everyone allowed to have watched but at
	// most one of them: a film seen by both is excluded, a film seen by
	// only x survives.
	rec := recommenderFixture()
	films := []models.Film{
		candidateFilm("seen-by-both", 4, "x", "y"),
		candidateFilm("seen-by-x", 3, "x"),
	}

	got, err := rec.Recommend(films, &Request{
		Watchers:           []string{"x", "y"},
		AllOK:              true,
		MaxOKToHaveWatched: 1,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 1 || got[0].FilmID != "seen-by-x" {
		t.Fatalf("got %d recs %v, want only seen-by-x", len(got), got)
	}
}

func TestRecommendNonOverrideWatcherDisqualifies(t *testing.T) {
	rec := recommenderFixture()
	films := []models.Film{
		candidateFilm("seen-by-y", 4, "y"),
		candidateFilm("unseen", 3),
	}

	// Only x may have watched a candidate; y's watch disqualifies.
	got, err := rec.Recommend(films, &Request{
		Watchers:           []string{"x", "y"},
		OKToHaveWatched:    []string{"x"},
		MaxOKToHaveWatched: 2,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 1 || got[0].FilmID != "unseen" {
		t.Fatalf("got %v, want only unseen", got)
	}
}

func TestRecommendRankingAndPagination(t *testing.T) {
	rec := recommenderFixture()
	films := []models.Film{
		candidateFilm("mid", 3),
		candidateFilm("best", 5),
		candidateFilm("tie-b", 4),
		candidateFilm("tie-a", 4),
	}
	req := &Request{Watchers: []string{"x", "y"}, NumRecs: 10}

	got, err := rec.Recommend(films, req)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	wantOrder := []string{"best", "tie-a", "tie-b", "mid"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d recs, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].FilmID != want {
			t.Errorf("rank %d = %s, want %s", i, got[i].FilmID, want)
		}
	}

	// Both watchers predict critic's rating exactly, so the mean is it.
	if got[0].AvgPredictedRating != 5 {
		t.Errorf("best AvgPredictedRating = %v, want 5", got[0].AvgPredictedRating)
	}
	if r := got[0].PredictedRatings["x"]; r == nil || *r != 5 {
		t.Errorf("best prediction for x = %v, want 5", r)
	}

	req.Offset, req.NumRecs = 1, 2
	page, err := rec.Recommend(films, req)
	if err != nil {
		t.Fatalf("Recommend page: %v", err)
	}
	if len(page) != 2 || page[0].FilmID != "tie-a" || page[1].FilmID != "tie-b" {
		t.Errorf("page = %v, want [tie-a tie-b]", page)
	}

	req.Offset = 10
	empty, err := rec.Recommend(films, req)
	if err != nil {
		t.Fatalf("Recommend past end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("offset past end returned %d recs, want 0", len(empty))
	}
}

func TestRecommendDropsFilmsWithoutPredictions(t *testing.T) {
	rec := recommenderFixture()
	films := []models.Film{
		// Rated only by a stranger sharing no films with the watchers.
		{FilmID: "unknown", Reviews: []models.Review{
			{FilmID: "unknown", User: "stranger", Rating: 5},
		}},
	}

	got, err := rec.Recommend(films, &Request{Watchers: []string{"x"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d recs, want 0 (no prediction possible)", len(got))
	}
}
