// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/middleware"
)

// NewRouter assembles the chi router with the full middleware stack and
// every API route.
func NewRouter(handler *Handler, cfg config.APIConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimitReqs, cfg.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", handler.Health)

		r.Get("/users", handler.Users)
		r.Get("/users/{username}", handler.User)

		r.Get("/films", handler.Films)
		r.Get("/films/{film_id}", handler.Film)

		r.Get("/superlatives", handler.Superlatives)
		r.Get("/predict/{film_id}", handler.Predict)
		r.Get("/recommendations", handler.Recommendations)

		r.Post("/stats/refresh", handler.RefreshStats)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
