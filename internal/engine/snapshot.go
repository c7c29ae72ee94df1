// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package engine

import (
	"fmt"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// Snapshot is the complete in-memory input of one engine pass: every
// user's diary plus the film table. The engine never reaches outside it,
// so a pass is a pure function of its snapshot.
type Snapshot struct {
	Users []models.User
	Films []models.Film
}

// Validate checks the snapshot for structural defects. A structural
// defect aborts the whole pass; per-record defects (bad rating values,
// missing metadata) are handled during computation instead.
func (s *Snapshot) Validate() error {
	if len(s.Users) == 0 {
		return ErrEmptySnapshot
	}

	seen := make(map[string]struct{}, len(s.Users))
	for i := range s.Users {
		name := s.Users[i].Username
		if name == "" {
			return fmt.Errorf("user %d: %w", i, ErrMissingUsername)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("user %q: %w", name, ErrDuplicateUsername)
		}
		seen[name] = struct{}{}
	}

	for i := range s.Films {
		if s.Films[i].FilmID == "" {
			return fmt.Errorf("film %d: %w", i, ErrMissingFilmID)
		}
	}

	return nil
}

// index holds per-film lookup tables derived from the user diaries.
// User records are the single source of truth; film documents contribute
// metadata only.
type index struct {
	// metadata maps film ID to its scraped metadata.
	metadata map[string]models.FilmMetadata

	// ratings maps film ID -> username -> rating, for valid ratings only.
	ratings map[string]map[string]float64

	// userRatings is the transposed view: username -> film ID -> rating.
	userRatings map[string]map[string]float64

	// liked maps film ID -> username -> is_liked, across reviews and watches.
	liked map[string]map[string]bool

	// watched maps film ID -> usernames that logged it (rated or not).
	watched map[string]map[string]struct{}

	// genres is the configured genre universe. Film tags outside it are
	// ignored during genre aggregation.
	genres map[string]struct{}
}

// buildIndex derives the lookup tables from a validated snapshot.
// Reviews with ratings off the half-point scale are dropped and logged;
// they still count as watches.
func buildIndex(s *Snapshot, genres []string) *index {
	idx := &index{
		metadata:    make(map[string]models.FilmMetadata, len(s.Films)),
		ratings:     make(map[string]map[string]float64),
		userRatings: make(map[string]map[string]float64, len(s.Users)),
		liked:       make(map[string]map[string]bool),
		watched:     make(map[string]map[string]struct{}),
		genres:      make(map[string]struct{}, len(genres)),
	}
	for _, g := range genres {
		idx.genres[g] = struct{}{}
	}

	for i := range s.Films {
		idx.metadata[s.Films[i].FilmID] = s.Films[i].Metadata
	}

	for i := range s.Users {
		user := &s.Users[i]
		for _, rev := range user.Reviews {
			idx.markWatched(rev.FilmID, user.Username, rev.IsLiked)
			if !ValidRating(rev.Rating) {
				logging.Warn().
					Str("user", user.Username).
					Str("film_id", rev.FilmID).
					Float64("rating", rev.Rating).
					Msg("Skipping review with rating off the half-point scale")
				continue
			}
			if idx.ratings[rev.FilmID] == nil {
				idx.ratings[rev.FilmID] = make(map[string]float64)
			}
			idx.ratings[rev.FilmID][user.Username] = rev.Rating

			if idx.userRatings[user.Username] == nil {
				idx.userRatings[user.Username] = make(map[string]float64)
			}
			idx.userRatings[user.Username][rev.FilmID] = rev.Rating
		}
		for _, w := range user.Watches {
			idx.markWatched(w.FilmID, user.Username, w.IsLiked)
		}
	}

	return idx
}

func (idx *index) markWatched(filmID, username string, isLiked bool) {
	if idx.watched[filmID] == nil {
		idx.watched[filmID] = make(map[string]struct{})
	}
	idx.watched[filmID][username] = struct{}{}

	if idx.liked[filmID] == nil {
		idx.liked[filmID] = make(map[string]bool)
	}
	idx.liked[filmID][username] = isLiked
}
