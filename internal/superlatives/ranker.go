// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package superlatives

import "sort"

// Direction selects which end of the value range wins first place.
type Direction int

const (
	// Descending awards first place to the highest value.
	Descending Direction = iota

	// Ascending awards first place to the lowest value.
	Ascending
)

// Ranking is the tie-aware top-3 result of one scored dimension.
// Entities sharing a value share its rank; the next distinct value takes
// the next rank. An unoccupied rank has an empty, non-nil entity list
// (so it serializes as []) and a nil value. Entities within a rank are
// in ascending lexicographic order.
type Ranking struct {
	First       []string
	FirstValue  *float64
	Second      []string
	SecondValue *float64
	Third       []string
	ThirdValue  *float64
}

// Rank produces the tie-aware top-3 of a scored entity mapping. Entities
// with no defined score are simply absent from values. When fewer than
// minGroupSize entities are scored, the whole ranking is empty.
func Rank(values map[string]float64, dir Direction, minGroupSize int) Ranking {
	ranking := Ranking{
		First:  []string{},
		Second: []string{},
		Third:  []string{},
	}
	if len(values) == 0 || len(values) < minGroupSize {
		return ranking
	}

	byValue := make(map[float64][]string, len(values))
	for entity, v := range values {
		byValue[v] = append(byValue[v], entity)
	}

	distinct := make([]float64, 0, len(byValue))
	for v := range byValue {
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)
	if dir == Descending {
		for i, j := 0, len(distinct)-1; i < j; i, j = i+1, j-1 {
			distinct[i], distinct[j] = distinct[j], distinct[i]
		}
	}

	rankSlots := []struct {
		entities *[]string
		value    **float64
	}{
		{&ranking.First, &ranking.FirstValue},
		{&ranking.Second, &ranking.SecondValue},
		{&ranking.Third, &ranking.ThirdValue},
	}
	for i, slot := range rankSlots {
		if i >= len(distinct) {
			break
		}
		v := distinct[i]
		entities := byValue[v]
		sort.Strings(entities)
		*slot.entities = entities
		*slot.value = &v
	}

	return ranking
}
