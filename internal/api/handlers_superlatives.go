// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"net/http"
	"time"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/cache"
)

// Superlatives returns the stored superlative categories from the last
// completed stats pass.
func (h *Handler) Superlatives(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	key := cache.Key("superlatives")
	if data, ok := h.cache.Get(key); ok {
		respondSuccess(w, data, started, true)
		return
	}

	categories, err := h.store.ListSuperlatives(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load superlatives", err)
		return
	}

	h.cache.Set(key, categories)
	respondSuccess(w, categories, started, false)
}
