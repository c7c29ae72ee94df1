// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/predict"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/recommend"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/validation"
)

// recommendationsRequest carries the validated query parameters.
type recommendationsRequest struct {
	NumRecs            int `validate:"min=1,max=100"`
	Offset             int `validate:"min=0"`
	MaxOKToHaveWatched int `validate:"min=0"`
}

// RecommendationsResponse is the payload of the recommendation endpoint.
type RecommendationsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
	Watchers        []string                `json:"watchers"`
	Offset          int                     `json:"offset"`
	NumRecs         int                     `json:"num_recs"`
}

// Recommendations ranks unseen films for a group of watchers. The film
// filter vocabulary of the listing endpoint narrows the candidates.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q := r.URL.Query()

	watchers := parseCommaSeparated(q.Get("watchers"))
	if len(watchers) == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "watchers parameter is required", nil)
		return
	}

	req := recommendationsRequest{
		NumRecs:            getIntParam(r, "num_recs", 3),
		Offset:             getIntParam(r, "offset", 0),
		MaxOKToHaveWatched: getIntParam(r, "max_ok_to_have_watched", 0),
	}
	if err := validation.ValidateStruct(&req); err != nil {
		apiErr := err.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	request := &recommend.Request{
		Watchers:           watchers,
		MaxOKToHaveWatched: req.MaxOKToHaveWatched,
		Filter:             filmFilterFromQuery(r),
		NumRecs:            req.NumRecs,
		Offset:             req.Offset,
	}
	if ok := q.Get("ok_to_have_watched"); ok == "all" {
		request.AllOK = true
	} else {
		request.OKToHaveWatched = parseCommaSeparated(ok)
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load users", err)
		return
	}
	films, err := h.store.ListFilms(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load films", err)
		return
	}

	agreements := make(predict.StatsAgreement, len(users))
	for i := range users {
		agreements[users[i].Username] = users[i].Stats
	}
	recommender := recommend.NewRecommender(
		predict.NewPredictor(agreements, h.cfg.Engine.LikeTieDefault))

	recommendations, err := recommender.Recommend(films, request)
	if err != nil {
		if errors.Is(err, recommend.ErrNoWatchers) ||
			errors.Is(err, recommend.ErrOverrideNotWatcher) ||
			errors.Is(err, recommend.ErrNegativeOffset) {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build recommendations", err)
		return
	}

	respondSuccess(w, RecommendationsResponse{
		Recommendations: recommendations,
		Watchers:        watchers,
		Offset:          req.Offset,
		NumRecs:         req.NumRecs,
	}, started, false)
}
