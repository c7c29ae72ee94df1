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
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/validation"
)

// filmSortFields maps the sortable field names to their comparators.
var filmSortFields = map[string]func(a, b *models.Film) bool{
	"film_id":    func(a, b *models.Film) bool { return a.FilmID < b.FilmID },
	"film_title": func(a, b *models.Film) bool { return a.FilmTitle < b.FilmTitle },
	"avg_rating": func(a, b *models.Film) bool {
		return derefOrMin(a.AvgRating) < derefOrMin(b.AvgRating)
	},
	"like_ratio": func(a, b *models.Film) bool {
		return derefOrMin(a.LikeRatio) < derefOrMin(b.LikeRatio)
	},
	"num_likes":        func(a, b *models.Film) bool { return a.NumLikes < b.NumLikes },
	"num_ratings":      func(a, b *models.Film) bool { return a.NumRatings < b.NumRatings },
	"num_watches":      func(a, b *models.Film) bool { return a.NumWatches < b.NumWatches },
	"metadata.year":    func(a, b *models.Film) bool { return a.Metadata.Year < b.Metadata.Year },
	"metadata.runtime": func(a, b *models.Film) bool { return a.Metadata.Runtime < b.Metadata.Runtime },
}

// derefOrMin places films without a value before every valued film in
// ascending order.
func derefOrMin(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}

// filmsRequest carries the validated listing parameters.
type filmsRequest struct {
	Page      int    `validate:"min=1"`
	Limit     int    `validate:"min=1"`
	SortBy    string `validate:"omitempty"`
	SortOrder string `validate:"oneof=asc desc"`
}

// FilmsResponse is the payload of the film listing.
type FilmsResponse struct {
	Films      []models.Film `json:"films"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
	TotalFilms int           `json:"total_films"`
}

// Films lists films with the shared filter vocabulary, sorting and
// pagination.
func (h *Handler) Films(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	req := filmsRequest{
		Page:      getIntParam(r, "page", 1),
		Limit:     h.pageSize(getIntParam(r, "limit", 0)),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if req.SortBy == "" {
		req.SortBy = "film_title"
	}
	if req.SortOrder == "" {
		req.SortOrder = "asc"
	}
	if err := validation.ValidateStruct(&req); err != nil {
		apiErr := err.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	less, ok := filmSortFields[req.SortBy]
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sort field: "+req.SortBy, nil)
		return
	}

	filter := filmFilterFromQuery(r)
	key := cache.Key("films", req, r.URL.RawQuery)
	if data, ok := h.cache.Get(key); ok {
		respondSuccess(w, data, started, true)
		return
	}

	films, err := h.store.ListFilms(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load films", err)
		return
	}

	matched := films[:0:0]
	for i := range films {
		if filter.Matches(&films[i]) {
			matched = append(matched, films[i])
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if req.SortOrder == "desc" {
			return less(&matched[j], &matched[i])
		}
		return less(&matched[i], &matched[j])
	})

	totalPages := (len(matched) + req.Limit - 1) / req.Limit
	if req.Page > totalPages && len(matched) > 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Page number out of range", nil)
		return
	}

	start := (req.Page - 1) * req.Limit
	end := start + req.Limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	response := FilmsResponse{
		Films:      matched[start:end],
		Page:       req.Page,
		PerPage:    req.Limit,
		TotalPages: totalPages,
		TotalFilms: len(matched),
	}
	h.cache.Set(key, response)
	respondSuccess(w, response, started, false)
}

// Film returns one film document by its Letterboxd slug.
func (h *Handler) Film(w http.ResponseWriter, r *http.Request) {
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
	respondSuccess(w, film, started, false)
}
