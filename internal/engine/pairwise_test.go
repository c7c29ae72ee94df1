// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import (
	"math"
	"testing"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

func matrixFixture(t *testing.T, workers int) (*index, *Matrix) {
	t.Helper()
	snapshot := &Snapshot{
		Users: []models.User{
			{Username: "alice", Reviews: []models.Review{
				{FilmID: "parasite-2019", User: "alice", Rating: 5},
				{FilmID: "dune-2021", User: "alice", Rating: 4},
				{FilmID: "tenet", User: "alice", Rating: 3},
			}},
			{Username: "bob", Reviews: []models.Review{
				{FilmID: "parasite-2019", User: "bob", Rating: 3},
				{FilmID: "dune-2021", User: "bob", Rating: 4.5},
			}},
			{Username: "carol", Reviews: []models.Review{
				{FilmID: "moonlight-2016", User: "carol", Rating: 4},
			}},
		},
	}
	idx := buildIndex(snapshot, nil)
	return idx, buildMatrix(idx, []string{"alice", "bob", "carol"}, workers)
}

func TestMatrixAgreement(t *testing.T) {
	_, m := matrixFixture(t, 1)

	got, ok := m.Agreement("alice", "bob")
	if !ok {
		t.Fatal("expected alice/bob agreement")
	}
	// Shared: parasite (5 vs 3), dune (4 vs 4.5).
	if got.NumShared != 2 {
		t.Errorf("NumShared = %d, want 2", got.NumShared)
	}
	wantMeanDiff := (2.0 + -0.5) / 2
	if math.Abs(got.MeanDiff-wantMeanDiff) > 1e-12 {
		t.Errorf("MeanDiff = %v, want %v", got.MeanDiff, wantMeanDiff)
	}
	wantMeanAbsDiff := (2.0 + 0.5) / 2
	if math.Abs(got.MeanAbsDiff-wantMeanAbsDiff) > 1e-12 {
		t.Errorf("MeanAbsDiff = %v, want %v", got.MeanAbsDiff, wantMeanAbsDiff)
	}
}

func TestMatrixSymmetry(t *testing.T) {
	_, m := matrixFixture(t, 2)

	ab, okAB := m.Agreement("alice", "bob")
	ba, okBA := m.Agreement("bob", "alice")
	if !okAB || !okBA {
		t.Fatal("expected agreement in both directions")
	}
	if ab.MeanDiff != -ba.MeanDiff {
		t.Errorf("MeanDiff not antisymmetric: %v vs %v", ab.MeanDiff, ba.MeanDiff)
	}
	if ab.MeanAbsDiff != ba.MeanAbsDiff {
		t.Errorf("MeanAbsDiff not symmetric: %v vs %v", ab.MeanAbsDiff, ba.MeanAbsDiff)
	}
	if ab.NumShared != ba.NumShared {
		t.Errorf("NumShared not symmetric: %d vs %d", ab.NumShared, ba.NumShared)
	}
}

func TestMatrixNoOverlapAbsent(t *testing.T) {
	_, m := matrixFixture(t, 1)

	if _, ok := m.Agreement("alice", "carol"); ok {
		t.Error("expected no entry for pair without shared rated films")
	}
	if _, ok := m.Agreement("alice", "alice"); ok {
		t.Error("expected no entry for a user against themselves")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestMatrixNeighbors(t *testing.T) {
	_, m := matrixFixture(t, 1)

	neighbors := m.Neighbors("bob")
	if len(neighbors) != 1 {
		t.Fatalf("bob neighbors = %d, want 1", len(neighbors))
	}
	got, ok := neighbors["alice"]
	if !ok {
		t.Fatal("expected alice among bob's neighbors")
	}
	want, _ := m.Agreement("bob", "alice")
	if got != want {
		t.Errorf("Neighbors entry = %+v, want %+v", got, want)
	}
}

func TestMatrixWorkerCountInvariance(t *testing.T) {
	_, serial := matrixFixture(t, 1)
	_, parallel := matrixFixture(t, 8)

	if serial.Len() != parallel.Len() {
		t.Fatalf("entry counts differ: %d vs %d", serial.Len(), parallel.Len())
	}
	serial.Pairs(func(lo, hi string, want models.PairwiseAgreement) {
		got, ok := parallel.Agreement(lo, hi)
		if !ok || got != want {
			t.Errorf("pair %s/%s: got %+v, want %+v", lo, hi, got, want)
		}
	})
}
