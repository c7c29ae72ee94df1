// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package engine computes derived statistics for a film club from a
// point-in-time snapshot of user diaries and film metadata: per-user
// profiles, the pairwise rating-agreement matrix and per-film group
// aggregates.
//
// The engine is a pure function of its snapshot. It never talks to
// storage; callers load a snapshot, run a pass and persist the output
// atomically.
package engine
