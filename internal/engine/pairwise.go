// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import (
	"math"
	"sort"
	"sync"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// pairKey identifies an unordered user pair. Lo is always the
// lexicographically smaller username, so each pair is computed and
// stored exactly once.
type pairKey struct {
	Lo, Hi string
}

// canonicalPair builds the canonical key for two usernames.
func canonicalPair(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{Lo: a, Hi: b}
}

// Matrix is the symmetric pairwise-agreement matrix over all user pairs
// with at least one shared rated film. MeanDiff is stored from the
// perspective of the pair's Lo user and negated for the reverse lookup.
//
// Memory is O(U^2) entries worst case; U is tens of users, so the whole
// matrix stays small and explicit.
type Matrix struct {
	entries map[pairKey]models.PairwiseAgreement
}

// Agreement returns the agreement metrics between user and other from
// user's perspective. The second return value is false when the pair
// shares no rated films (absence, not zero).
func (m *Matrix) Agreement(user, other string) (models.PairwiseAgreement, bool) {
	if m == nil || user == other {
		return models.PairwiseAgreement{}, false
	}
	entry, ok := m.entries[canonicalPair(user, other)]
	if !ok {
		return models.PairwiseAgreement{}, false
	}
	if user > other {
		entry.MeanDiff = -entry.MeanDiff
	}
	return entry, true
}

// Pairs calls fn for every stored pair in deterministic order.
func (m *Matrix) Pairs(fn func(lo, hi string, agreement models.PairwiseAgreement)) {
	keys := make([]pairKey, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo < keys[j].Lo
		}
		return keys[i].Hi < keys[j].Hi
	})
	for _, k := range keys {
		fn(k.Lo, k.Hi, m.entries[k])
	}
}

// Neighbors returns every counterpart the user shares at least one
// rated film with, keyed by username, with metrics from the user's
// perspective.
func (m *Matrix) Neighbors(user string) map[string]models.PairwiseAgreement {
	neighbors := make(map[string]models.PairwiseAgreement)
	for k, entry := range m.entries {
		var other string
		switch user {
		case k.Lo:
			other = k.Hi
		case k.Hi:
			other = k.Lo
			entry.MeanDiff = -entry.MeanDiff
		default:
			continue
		}
		neighbors[other] = entry
	}
	return neighbors
}

// Len returns the number of stored pairs.
func (m *Matrix) Len() int {
	return len(m.entries)
}

// buildMatrix computes agreement for every unordered pair of users,
// fanned out across numWorkers goroutines. Each worker owns a disjoint
// chunk of pairs; results merge under a single mutex.
func buildMatrix(idx *index, usernames []string, numWorkers int) *Matrix {
	sorted := make([]string, len(usernames))
	copy(sorted, usernames)
	sort.Strings(sorted)

	// Materialize the unordered pairs up front so the workers can chunk
	// them evenly.
	pairs := make([]pairKey, 0, len(sorted)*(len(sorted)-1)/2)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			pairs = append(pairs, pairKey{Lo: sorted[i], Hi: sorted[j]})
		}
	}

	m := &Matrix{entries: make(map[pairKey]models.PairwiseAgreement)}
	if len(pairs) == 0 {
		return m
	}

	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(pairs) {
		numWorkers = len(pairs)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	chunkSize := (len(pairs) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(pairs) {
			end = len(pairs)
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(chunk []pairKey) {
			defer wg.Done()

			local := make(map[pairKey]models.PairwiseAgreement, len(chunk))
			for _, pair := range chunk {
				if agreement, ok := pairAgreement(idx, pair.Lo, pair.Hi); ok {
					local[pair] = agreement
				}
			}

			mu.Lock()
			for k, v := range local {
				m.entries[k] = v
			}
			mu.Unlock()
		}(pairs[start:end])
	}

	wg.Wait()
	return m
}

// pairAgreement computes agreement between lo and hi over the films both
// rated. Returns false when the intersection is empty.
func pairAgreement(idx *index, lo, hi string) (models.PairwiseAgreement, bool) {
	loRatings := idx.userRatings[lo]
	hiRatings := idx.userRatings[hi]
	if len(loRatings) == 0 || len(hiRatings) == 0 {
		return models.PairwiseAgreement{}, false
	}

	// Iterate the smaller map when probing the intersection.
	probe, other := loRatings, hiRatings
	sign := 1.0
	if len(hiRatings) < len(loRatings) {
		probe, other = hiRatings, loRatings
		sign = -1.0
	}

	var sumDiff, sumAbsDiff float64
	shared := 0
	for filmID, r := range probe {
		o, ok := other[filmID]
		if !ok {
			continue
		}
		diff := sign * (r - o)
		sumDiff += diff
		sumAbsDiff += math.Abs(diff)
		shared++
	}

	if shared == 0 {
		return models.PairwiseAgreement{}, false
	}

	n := float64(shared)
	return models.PairwiseAgreement{
		MeanDiff:    sumDiff / n,
		MeanAbsDiff: sumAbsDiff / n,
		NumShared:   shared,
	}, true
}
