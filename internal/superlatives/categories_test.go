// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package superlatives

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/engine"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

func runPass(t *testing.T, cfg config.EngineConfig, snapshot *engine.Snapshot) *engine.Output {
	t.Helper()
	out, err := engine.New(cfg).Run(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("engine pass: %v", err)
	}
	return out
}

func findSuperlative(t *testing.T, categories []models.SuperlativeCategory, category, name string) models.Superlative {
	t.Helper()
	for _, c := range categories {
		if c.Category != category {
			continue
		}
		for _, s := range c.Superlatives {
			if s.Name == name {
				return s
			}
		}
	}
	t.Fatalf("superlative %q not found in category %q", name, category)
	return models.Superlative{}
}

func TestBuildUserAwards(t *testing.T) {
	cfg := config.EngineConfig{
		Genres:         config.DefaultGenres,
		MinFilmRatings: 1,
		MinSharedFilms: 1,
		Workers:        1,
	}
	snapshot := &engine.Snapshot{
		Users: []models.User{
			{Username: "alice", Reviews: []models.Review{
				{FilmID: "a", User: "alice", Rating: 5},
				{FilmID: "b", User: "alice", Rating: 4.5},
			}},
			{Username: "bob", Reviews: []models.Review{
				{FilmID: "a", User: "bob", Rating: 2},
				{FilmID: "b", User: "bob", Rating: 1.5},
			}},
		},
	}
	out := runPass(t, cfg, snapshot)
	categories := NewBuilder(cfg).Build(out, nil)

	polly := findSuperlative(t, categories, "users", "Positive Polly")
	if !reflect.DeepEqual(polly.First, []string{"alice"}) || *polly.FirstValue != 4.75 {
		t.Errorf("Positive Polly = %v (%v), want [alice] (4.75)", polly.First, polly.FirstValue)
	}

	nelly := findSuperlative(t, categories, "users", "Negative Nelly")
	if !reflect.DeepEqual(nelly.First, []string{"bob"}) || *nelly.FirstValue != 1.75 {
		t.Errorf("Negative Nelly = %v (%v), want [bob] (1.75)", nelly.First, nelly.FirstValue)
	}

	bffs := findSuperlative(t, categories, "users", "BFFs")
	if !reflect.DeepEqual(bffs.First, []string{"alice & bob"}) || *bffs.FirstValue != 3 {
		t.Errorf("BFFs = %v (%v), want [alice & bob] (3)", bffs.First, bffs.FirstValue)
	}
}

func TestBuildPairAwardsRespectMinShared(t *testing.T) {
	cfg := config.EngineConfig{
		Genres:         config.DefaultGenres,
		MinFilmRatings: 1,
		MinSharedFilms: 3,
		Workers:        1,
	}
	snapshot := &engine.Snapshot{
		Users: []models.User{
			{Username: "alice", Reviews: []models.Review{
				{FilmID: "a", User: "alice", Rating: 5},
			}},
			{Username: "bob", Reviews: []models.Review{
				{FilmID: "a", User: "bob", Rating: 4},
			}},
		},
	}
	out := runPass(t, cfg, snapshot)
	categories := NewBuilder(cfg).Build(out, nil)

	bffs := findSuperlative(t, categories, "users", "BFFs")
	if len(bffs.First) != 0 || bffs.FirstValue != nil {
		t.Errorf("BFFs with one shared film = %v, want empty (minimum 3 shared)", bffs.First)
	}
}

func TestBuildFilmAwards(t *testing.T) {
	cfg := config.EngineConfig{
		Genres:         config.DefaultGenres,
		MinFilmRatings: 2,
		MinSharedFilms: 1,
		Workers:        1,
	}
	snapshot := &engine.Snapshot{
		Users: []models.User{
			{Username: "alice", Reviews: []models.Review{
				{FilmID: "good", User: "alice", Rating: 5},
				{FilmID: "bad", User: "alice", Rating: 1},
				{FilmID: "solo", User: "alice", Rating: 5},
			}},
			{Username: "bob", Reviews: []models.Review{
				{FilmID: "good", User: "bob", Rating: 4},
				{FilmID: "bad", User: "bob", Rating: 2},
			}},
		},
		Films: []models.Film{
			{FilmID: "good", Metadata: models.FilmMetadata{AvgRating: 3.0}},
			{FilmID: "bad", Metadata: models.FilmMetadata{AvgRating: 3.5}},
			{FilmID: "solo", Metadata: models.FilmMetadata{AvgRating: 4.0}},
		},
	}
	out := runPass(t, cfg, snapshot)
	categories := NewBuilder(cfg).Build(out, snapshot.Films)

	best := findSuperlative(t, categories, "films", "Best Movie")
	if !reflect.DeepEqual(best.First, []string{"good"}) || *best.FirstValue != 4.5 {
		t.Errorf("Best Movie = %v (%v), want [good] (4.5)", best.First, best.FirstValue)
	}
	// "solo" has one rating and misses the minimum, so "bad" is last.
	worst := findSuperlative(t, categories, "films", "Worst Movie")
	if !reflect.DeepEqual(worst.First, []string{"bad"}) || *worst.FirstValue != 1.5 {
		t.Errorf("Worst Movie = %v (%v), want [bad] (1.5)", worst.First, worst.FirstValue)
	}

	underrated := findSuperlative(t, categories, "films", "Most Underrated Movie")
	if !reflect.DeepEqual(underrated.First, []string{"good"}) || *underrated.FirstValue != 1.5 {
		t.Errorf("Most Underrated = %v (%v), want [good] (1.5)", underrated.First, underrated.FirstValue)
	}
	overrated := findSuperlative(t, categories, "films", "Most Overrated Movie")
	if !reflect.DeepEqual(overrated.First, []string{"bad"}) || *overrated.FirstValue != -2 {
		t.Errorf("Most Overrated = %v (%v), want [bad] (-2)", overrated.First, overrated.FirstValue)
	}
}

func TestBuildGenreAficionados(t *testing.T) {
	cfg := config.EngineConfig{
		Genres:         config.DefaultGenres,
		MinFilmRatings: 1,
		MinSharedFilms: 1,
		Workers:        2,
	}

	// Watch histories of 100/50/20 films with 65/25/8 tagged Action:
	// the 65% user takes first.
	sizes := []struct {
		username string
		watches  int
		action   int
	}{
		{"heavy", 100, 65},
		{"medium", 50, 25},
		{"light", 20, 8},
	}
	snapshot := &engine.Snapshot{}
	for _, s := range sizes {
		user := models.User{Username: s.username}
		for i := 0; i < s.watches; i++ {
			filmID := fmt.Sprintf("%s-film-%03d", s.username, i)
			user.Watches = append(user.Watches, models.Watch{FilmID: filmID, User: s.username})
			md := models.FilmMetadata{Genres: []string{"Drama"}}
			if i < s.action {
				md.Genres = []string{"Action"}
			}
			snapshot.Films = append(snapshot.Films, models.Film{FilmID: filmID, Metadata: md})
		}
		snapshot.Users = append(snapshot.Users, user)
	}

	out := runPass(t, cfg, snapshot)
	categories := NewBuilder(cfg).Build(out, snapshot.Films)

	action := findSuperlative(t, categories, "genres", "Action Aficionado")
	if !reflect.DeepEqual(action.First, []string{"heavy"}) || *action.FirstValue != 65 {
		t.Errorf("Action Aficionado = %v (%v), want [heavy] (65)", action.First, action.FirstValue)
	}
	if !reflect.DeepEqual(action.Second, []string{"medium"}) || *action.SecondValue != 50 {
		t.Errorf("Action Aficionado second = %v (%v), want [medium] (50)", action.Second, action.SecondValue)
	}
	if !reflect.DeepEqual(action.Third, []string{"light"}) || *action.ThirdValue != 40 {
		t.Errorf("Action Aficionado third = %v (%v), want [light] (40)", action.Third, action.ThirdValue)
	}
}
