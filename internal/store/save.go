// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/engine"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// SaveOutput persists the result of one complete engine pass: every
// user's stats, every film's aggregates and the superlative categories.
//
// The write only starts after the pass has fully succeeded, so stored
// state is never mixed with a failed pass. Stats are replaced wholesale
// with $set, never merged field by field.
func (s *Store) SaveOutput(ctx context.Context, out *engine.Output, categories []models.SuperlativeCategory) error {
	if err := s.saveUserStats(ctx, out); err != nil {
		return err
	}
	if err := s.saveFilmStats(ctx, out); err != nil {
		return err
	}
	if err := s.ReplaceSuperlatives(ctx, categories); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Int("users", len(out.UserStats)).
		Int("films", len(out.FilmStats)).
		Int("categories", len(categories)).
		Msg("Persisted engine pass output")
	return nil
}

func (s *Store) saveUserStats(ctx context.Context, out *engine.Output) error {
	writes := make([]mongo.WriteModel, 0, len(out.UserStats))
	for username, stats := range out.UserStats {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"username": username}).
			SetUpdate(bson.M{"$set": bson.M{"stats": stats}}))
	}
	if len(writes) == 0 {
		return nil
	}
	if _, err := s.users().BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("saving user stats: %w", err)
	}
	return nil
}

func (s *Store) saveFilmStats(ctx context.Context, out *engine.Output) error {
	writes := make([]mongo.WriteModel, 0, len(out.FilmStats))
	for filmID, stats := range out.FilmStats {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"film_id": filmID}).
			SetUpdate(bson.M{"$set": stats}))
	}
	if len(writes) == 0 {
		return nil
	}
	if _, err := s.films().BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("saving film stats: %w", err)
	}
	return nil
}

// ReplaceSuperlatives swaps the superlatives collection for the given
// categories.
func (s *Store) ReplaceSuperlatives(ctx context.Context, categories []models.SuperlativeCategory) error {
	if _, err := s.superlatives().DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing superlatives: %w", err)
	}
	if len(categories) == 0 {
		return nil
	}
	docs := make([]interface{}, len(categories))
	for i := range categories {
		docs[i] = categories[i]
	}
	if _, err := s.superlatives().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting superlatives: %w", err)
	}
	return nil
}
