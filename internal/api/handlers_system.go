// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"net/http"
	"time"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
)

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Health reports liveness and process uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}, time.Now(), false)
}

// RefreshResponse is the payload of a manual stats refresh.
type RefreshResponse struct {
	Users      int `json:"users"`
	Films      int `json:"films"`
	Categories int `json:"categories"`
}

// RefreshStats triggers a full stats pass and flushes the response
// cache once the new output has been persisted.
func (h *Handler) RefreshStats(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	out, categories, err := h.runner.RunOnce(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "REFRESH_FAILED", "Stats refresh failed", err)
		return
	}
	h.cache.Invalidate()

	logging.Ctx(r.Context()).Info().
		Dur("duration", time.Since(started)).
		Msg("Manual stats refresh completed")

	respondSuccess(w, RefreshResponse{
		Users:      len(out.UserStats),
		Films:      len(out.FilmStats),
		Categories: len(categories),
	}, started, false)
}
