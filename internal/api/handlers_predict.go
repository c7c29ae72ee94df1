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

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/metrics"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/predict"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/store"
)

// PredictResponse is the payload of the film prediction endpoint.
type PredictResponse struct {
	FilmID      string              `json:"film_id"`
	FilmTitle   string              `json:"film_title"`
	Predictions []models.Prediction `json:"predictions"`
}

// Predict estimates every requested user's rating and like for one
// film. Without a users parameter it predicts for the whole group.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	filmID := chi.URLParam(r, "film_id")

	film, err := h.store.GetFilm(r.Context(), filmID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Film not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load film", err)
		return
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load users", err)
		return
	}

	usernames := parseCommaSeparated(r.URL.Query().Get("users"))
	known := make(map[string]struct{}, len(users))
	agreements := make(predict.StatsAgreement, len(users))
	for i := range users {
		known[users[i].Username] = struct{}{}
		agreements[users[i].Username] = users[i].Stats
	}
	if len(usernames) == 0 {
		for i := range users {
			usernames = append(usernames, users[i].Username)
		}
		sort.Strings(usernames)
	} else {
		for _, username := range usernames {
			if _, ok := known[username]; !ok {
				respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown user: "+username, nil)
				return
			}
		}
	}

	predictor := predict.NewPredictor(agreements, h.cfg.Engine.LikeTieDefault)
	predictions := make([]models.Prediction, 0, len(usernames))
	for _, username := range usernames {
		pred := predictor.Predict(username, film)
		predictions = append(predictions, pred)

		switch {
		case pred.AlreadyRated:
			metrics.RecordPrediction("already_rated")
		case pred.PredictedRating == nil:
			metrics.RecordPrediction("no_neighbors")
		default:
			metrics.RecordPrediction("predicted")
		}
	}

	respondSuccess(w, PredictResponse{
		FilmID:      film.FilmID,
		FilmTitle:   film.FilmTitle,
		Predictions: predictions,
	}, started, false)
}
