// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package recommend filters and ranks candidate films for a group of
// watchers. It owns the film filter vocabulary shared with the film
// listing and the watcher inclusion-exclusion rules.
package recommend
