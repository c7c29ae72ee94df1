// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package api exposes the HTTP surface: user and film listings with the
// shared filter vocabulary, superlatives, per-film predictions, group
// recommendations and the manual stats refresh. All endpoints respond
// with the standard APIResponse envelope.
package api
