// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import "errors"

// Structural snapshot errors. Any of these aborts the whole pass before
// output is produced; previously stored derived state stays untouched.
var (
	// ErrEmptySnapshot indicates the snapshot holds no users.
	ErrEmptySnapshot = errors.New("snapshot contains no users")

	// ErrMissingUsername indicates a user record without a username.
	ErrMissingUsername = errors.New("user record missing username")

	// ErrDuplicateUsername indicates two user records share a username.
	ErrDuplicateUsername = errors.New("duplicate username in snapshot")

	// ErrMissingFilmID indicates a film record without an ID.
	ErrMissingFilmID = errors.New("film record missing film_id")
)
