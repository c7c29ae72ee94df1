// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/engine"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/metrics"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/store"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/superlatives"
)

// Runner executes one complete stats pass: load a snapshot, run the
// engine, build superlatives and persist everything.
type Runner struct {
	store   *store.Store
	engine  *engine.Engine
	builder *superlatives.Builder

	// mu serializes passes so a scheduled run and a manual refresh
	// cannot interleave their writes.
	mu sync.Mutex
}

// NewRunner creates a Runner over the given store and engine settings.
func NewRunner(st *store.Store, cfg config.EngineConfig) *Runner {
	return &Runner{
		store:   st,
		engine:  engine.New(cfg),
		builder: superlatives.NewBuilder(cfg),
	}
}

// RunOnce executes a single pass. Nothing is written unless the whole
// pass succeeds.
func (r *Runner) RunOnce(ctx context.Context) (*engine.Output, []models.SuperlativeCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	snapshot, err := r.store.LoadSnapshot(ctx)
	if err != nil {
		metrics.RecordStatsPass(false, time.Since(start))
		return nil, nil, fmt.Errorf("loading snapshot: %w", err)
	}

	out, err := r.engine.Run(ctx, snapshot)
	if err != nil {
		metrics.RecordStatsPass(false, time.Since(start))
		return nil, nil, fmt.Errorf("running stats pass: %w", err)
	}
	categories := r.builder.Build(out, snapshot.Films)

	if err := r.store.SaveOutput(ctx, out, categories); err != nil {
		metrics.RecordStatsPass(false, time.Since(start))
		return nil, nil, fmt.Errorf("persisting stats pass: %w", err)
	}

	metrics.RecordStatsPass(true, time.Since(start))
	return out, categories, nil
}

// Service runs the Runner on a fixed interval under a suture
// supervisor.
type Service struct {
	runner *Runner
	cfg    config.RefreshConfig
}

// NewService creates the periodic refresh service.
func NewService(runner *Runner, cfg config.RefreshConfig) *Service {
	return &Service{runner: runner, cfg: cfg}
}

// Serve implements suture.Service. It optionally runs one pass at
// startup, then ticks until the context is canceled. A failed pass is
// logged and retried on the next tick rather than crashing the service.
func (s *Service) Serve(ctx context.Context) error {
	if s.cfg.OnStartup {
		s.run(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Service) run(ctx context.Context) {
	if _, _, err := s.runner.RunOnce(ctx); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Scheduled stats refresh failed")
	}
}

// String implements fmt.Stringer for supervisor logging.
func (s *Service) String() string {
	return "stats-refresh"
}
