// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package superlatives

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestRankEmptyInput(t *testing.T) {
	got := Rank(nil, Descending, 1)
	if len(got.First) != 0 || got.FirstValue != nil ||
		len(got.Second) != 0 || got.SecondValue != nil ||
		len(got.Third) != 0 || got.ThirdValue != nil {
		t.Errorf("Rank(nil) = %+v, want all ranks empty", got)
	}
}

func TestRankTieSharesFirst(t *testing.T) {
	got := Rank(map[string]float64{"A": 5, "B": 5, "C": 3}, Descending, 1)

	if !reflect.DeepEqual(got.First, []string{"A", "B"}) {
		t.Errorf("First = %v, want [A B]", got.First)
	}
	if got.FirstValue == nil || *got.FirstValue != 5 {
		t.Errorf("FirstValue = %v, want 5", got.FirstValue)
	}
	if !reflect.DeepEqual(got.Second, []string{"C"}) {
		t.Errorf("Second = %v, want [C]", got.Second)
	}
	if got.SecondValue == nil || *got.SecondValue != 3 {
		t.Errorf("SecondValue = %v, want 3", got.SecondValue)
	}
	if len(got.Third) != 0 || got.ThirdValue != nil {
		t.Errorf("Third = %v/%v, want empty/nil", got.Third, got.ThirdValue)
	}
}

func TestRankAscending(t *testing.T) {
	got := Rank(map[string]float64{"A": 5, "B": 1, "C": 3, "D": 4}, Ascending, 1)

	if !reflect.DeepEqual(got.First, []string{"B"}) || *got.FirstValue != 1 {
		t.Errorf("First = %v (%v), want [B] (1)", got.First, got.FirstValue)
	}
	if !reflect.DeepEqual(got.Second, []string{"C"}) || *got.SecondValue != 3 {
		t.Errorf("Second = %v (%v), want [C] (3)", got.Second, got.SecondValue)
	}
	if !reflect.DeepEqual(got.Third, []string{"D"}) || *got.ThirdValue != 4 {
		t.Errorf("Third = %v (%v), want [D] (4)", got.Third, got.ThirdValue)
	}
}

func TestRankBelowMinGroupSize(t *testing.T) {
	got := Rank(map[string]float64{"A": 5}, Descending, 2)
	if len(got.First) != 0 || got.FirstValue != nil {
		t.Errorf("Rank below min group size = %+v, want empty", got)
	}
}

func TestRankUnoccupiedRanksSerializeAsEmptyLists(t *testing.T) {
	award := newSuperlative("Best Movie",
		"Movie with the highest average rating",
		Rank(map[string]float64{"parasite-2019": 5}, Descending, 1))

	data, err := json.Marshal(award)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{`"second":[]`, `"third":[]`, `"second_value":null`, `"third_value":null`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Marshal() = %s, missing %s", data, want)
		}
	}
	if got := Rank(nil, Descending, 1); got.First == nil || got.Second == nil || got.Third == nil {
		t.Errorf("Rank(nil) = %+v, want non-nil entity lists", got)
	}
}

func TestRankWithinRankOrderIsLexicographic(t *testing.T) {
	got := Rank(map[string]float64{"zeta": 2, "alpha": 2, "mid": 2}, Descending, 1)
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got.First, want) {
		t.Errorf("First = %v, want %v", got.First, want)
	}
}
