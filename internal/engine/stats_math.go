// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import (
	"math"
	"sort"
)

// ValidRating reports whether r lies on the Letterboxd half-point scale
// {0.5, 1.0, ..., 5.0}. Anything else is a scrape defect.
func ValidRating(r float64) bool {
	doubled := r * 2
	return doubled == math.Trunc(doubled) && doubled >= 1 && doubled <= 10
}

// mean returns the arithmetic mean, or nil for an empty slice.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// median returns the middle value (average of the two middle values for
// even length), or nil for an empty slice.
func median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 1 {
		m = sorted[mid]
	} else {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}

// mode returns the most frequent value, or nil for an empty slice.
// On a multimodal input the smallest value wins, keeping passes
// deterministic.
func mode(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best float64
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return &best
}

// popStdev returns the population standard deviation, or nil when fewer
// than two values exist.
func popStdev(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	m := *mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	s := math.Sqrt(sumSq / float64(len(values)))
	return &s
}

// ratio returns num/den, or nil when den is zero.
func ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	r := float64(num) / float64(den)
	return &r
}
