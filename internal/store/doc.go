// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package store persists users, films and superlatives in MongoDB. It
// owns the read-modify-write cycle around an engine pass: load a full
// snapshot, then persist the pass output only after it has completely
// succeeded.
package store
