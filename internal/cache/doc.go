// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package cache provides a TTL response cache for the HTTP API, flushed
// wholesale whenever a stats refresh lands.
package cache
