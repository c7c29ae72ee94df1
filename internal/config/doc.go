// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package config loads application configuration with koanf from layered
// sources: built-in defaults, an optional YAML file and environment
// variables, in ascending precedence.
package config
