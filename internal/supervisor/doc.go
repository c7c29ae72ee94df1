// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package supervisor wraps suture with the application's restart policy
// and the HTTP server service adapter. Supervisor lifecycle events are
// bridged into zerolog via sutureslog.
package supervisor
