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
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/models"
)

// LoadSnapshot reads the complete user and film tables into memory as
// the input of one engine pass.
func (s *Store) LoadSnapshot(ctx context.Context) (*engine.Snapshot, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	films, err := s.ListFilms(ctx)
	if err != nil {
		return nil, err
	}
	return &engine.Snapshot{Users: users, Films: films}, nil
}

// ListUsers returns every user document.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

// GetUser returns one user by username.
func (s *Store) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading user %q: %w", username, err)
	}
	return &user, nil
}

// ListFilms returns every film document.
func (s *Store) ListFilms(ctx context.Context) ([]models.Film, error) {
	cursor, err := s.films().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing films: %w", err)
	}
	var films []models.Film
	if err := cursor.All(ctx, &films); err != nil {
		return nil, fmt.Errorf("decoding films: %w", err)
	}
	return films, nil
}

// GetFilm returns one film by its Letterboxd slug.
func (s *Store) GetFilm(ctx context.Context, filmID string) (*models.Film, error) {
	var film models.Film
	err := s.films().FindOne(ctx, bson.M{"film_id": filmID}).Decode(&film)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("film %q: %w", filmID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading film %q: %w", filmID, err)
	}
	return &film, nil
}

// ListSuperlatives returns the stored superlative categories.
func (s *Store) ListSuperlatives(ctx context.Context) ([]models.SuperlativeCategory, error) {
	cursor, err := s.superlatives().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing superlatives: %w", err)
	}
	var categories []models.SuperlativeCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decoding superlatives: %w", err)
	}
	return categories, nil
}
