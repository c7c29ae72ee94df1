// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// Engine computes the full set of derived statistics from a snapshot.
// A pass reads only its snapshot, so two passes over equal snapshots
// produce equal outputs.
type Engine struct {
	cfg config.EngineConfig
}

// New creates an Engine with the given settings.
func New(cfg config.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Output is the result of one engine pass: a fresh profile per user and
// fresh aggregates per film, plus the pairwise matrix the profiles were
// derived from. Callers persist it atomically or not at all.
type Output struct {
	// UserStats maps username to the freshly computed profile.
	UserStats map[string]*models.UserStats

	// FilmStats maps film ID to the group aggregates. Keys cover every
	// film appearing in any diary, whether or not a film document exists.
	FilmStats map[string]models.FilmStats

	// Matrix is the pairwise agreement matrix underlying the profiles.
	Matrix *Matrix

	// ComputedAt is the wall-clock start of the pass.
	ComputedAt time.Time
}

// Run executes one full pass over the snapshot. A structural snapshot
// defect aborts the pass with an error and no output.
func (e *Engine) Run(ctx context.Context, snapshot *Snapshot) (*Output, error) {
	start := time.Now()

	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("validating snapshot: %w", err)
	}

	idx := buildIndex(snapshot, e.cfg.Genres)

	usernames := make([]string, len(snapshot.Users))
	for i := range snapshot.Users {
		usernames[i] = snapshot.Users[i].Username
	}

	workers := e.cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	matrix := buildMatrix(idx, usernames, workers)

	// Per-user profiles are independent once the matrix exists, so they
	// fan out. Each goroutine writes its own slot.
	results := make([]*models.UserStats, len(snapshot.Users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range snapshot.Users {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = buildUserStats(idx, matrix, &snapshot.Users[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("computing user stats: %w", err)
	}

	out := &Output{
		UserStats:  make(map[string]*models.UserStats, len(snapshot.Users)),
		FilmStats:  make(map[string]models.FilmStats, len(idx.watched)),
		Matrix:     matrix,
		ComputedAt: start,
	}
	for i := range snapshot.Users {
		out.UserStats[usernames[i]] = results[i]
	}
	for filmID := range idx.watched {
		out.FilmStats[filmID] = buildFilmStats(idx, filmID)
	}

	logging.Ctx(ctx).Info().
		Int("users", len(out.UserStats)).
		Int("films", len(out.FilmStats)).
		Int("pairs", matrix.Len()).
		Dur("duration", time.Since(start)).
		Msg("Stats pass completed")

	return out, nil
}
