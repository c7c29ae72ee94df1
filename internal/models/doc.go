// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package models defines the shared data types: scraped diary records
// (Review, Watch), film metadata, the derived statistics documents
// (UserStats, FilmStats, GenreStat, PairwiseAgreement), superlatives,
// predictions and the HTTP response envelope.
//
// Types carry both json and bson tags so the same structs serve the API
// layer and the Mongo persistence layer.
package models
