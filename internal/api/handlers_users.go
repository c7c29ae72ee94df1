// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/cache"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/store"
)

// UserSummary is a user without their full diary, for list responses.
type UserSummary struct {
	Username string            `json:"username"`
	Stats    *models.UserStats `json:"stats,omitempty"`
}

// UsersResponse is the payload of the user listing.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
	Total int           `json:"total"`
}

// Users lists every user with their stats profile, sorted by username.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	key := cache.Key("users")
	if data, ok := h.cache.Get(key); ok {
		respondSuccess(w, data, started, true)
		return
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load users", err)
		return
	}

	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, UserSummary{
			Username: users[i].Username,
			Stats:    users[i].Stats,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Username < summaries[j].Username
	})

	response := UsersResponse{Users: summaries, Total: len(summaries)}
	h.cache.Set(key, response)
	respondSuccess(w, response, started, false)
}

// User returns one user document, diary included.
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	username := chi.URLParam(r, "username")

	user, err := h.store.GetUser(r.Context(), username)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load user", err)
		return
	}
	respondSuccess(w, user, started, false)
}
