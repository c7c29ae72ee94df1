// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Stats pass metrics
	StatsPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stats_pass_duration_seconds",
			Help:    "Duration of full stats passes in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	StatsPassTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_pass_total",
			Help: "Total number of stats passes by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	StatsPassLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stats_pass_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful stats pass",
		},
	)

	// API metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Prediction metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of rating predictions by result",
		},
		[]string{"result"}, // "predicted", "no_neighbors", "already_rated"
	)

	// Response cache metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)
)

// RecordStatsPass records the outcome and duration of one stats pass.
func RecordStatsPass(success bool, duration time.Duration) {
	StatsPassDuration.Observe(duration.Seconds())
	if success {
		StatsPassTotal.WithLabelValues("success").Inc()
		StatsPassLastSuccess.SetToCurrentTime()
	} else {
		StatsPassTotal.WithLabelValues("failure").Inc()
	}
}

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	code := strconv.Itoa(statusCode)
	APIRequestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, endpoint, code).Inc()
}

// RecordPrediction records one prediction by result class.
func RecordPrediction(result string) {
	PredictionsTotal.WithLabelValues(result).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
