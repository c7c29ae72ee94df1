// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package models

// Superlative is a ranked, tie-aware top-3 award over a scored dimension.
//
// Each rank holds the entities sharing that rank's value; a tie at one
// rank does not consume the following ranks. A rank with no qualifying
// entity has an empty list and a nil value.
type Superlative struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`

	First      []string `json:"first" bson:"first"`
	FirstValue *float64 `json:"first_value" bson:"first_value"`

	Second      []string `json:"second" bson:"second"`
	SecondValue *float64 `json:"second_value" bson:"second_value"`

	Third      []string `json:"third" bson:"third"`
	ThirdValue *float64 `json:"third_value" bson:"third_value"`
}

// SuperlativeCategory groups superlatives by the dimension they rank.
type SuperlativeCategory struct {
	// Category is "users", "films" or "genres".
	Category string `json:"category" bson:"category"`

	Superlatives []Superlative `json:"superlatives" bson:"superlatives"`
}
