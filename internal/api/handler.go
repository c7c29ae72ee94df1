// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"time"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/cache"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/refresh"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/store"
)

// Handler holds the dependencies of every HTTP endpoint.
type Handler struct {
	store   *store.Store
	cache   *cache.Cache
	runner  *refresh.Runner
	cfg     config.Config
	started time.Time
}

// NewHandler creates a Handler over the store, response cache and
// refresh runner.
func NewHandler(st *store.Store, c *cache.Cache, runner *refresh.Runner, cfg config.Config) *Handler {
	return &Handler{
		store:   st,
		cache:   c,
		runner:  runner,
		cfg:     cfg,
		started: time.Now(),
	}
}

// pageSize clamps a requested page size to the configured bounds.
func (h *Handler) pageSize(requested int) int {
	if requested < 1 {
		return h.cfg.API.DefaultPageSize
	}
	if requested > h.cfg.API.MaxPageSize {
		return h.cfg.API.MaxPageSize
	}
	return requested
}
