// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
)

// ErrNotFound indicates the requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the MongoDB persistence layer for users, films and
// superlatives.
type Store struct {
	cfg    config.DatabaseConfig
	client *mongo.Client
	db     *mongo.Database
}

// New creates an unconnected Store.
func New(cfg config.DatabaseConfig) *Store {
	return &Store{cfg: cfg}
}

// Connect dials MongoDB and verifies the connection with a ping.
func (s *Store) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("pinging mongodb: %w", err)
	}

	s.client = client
	s.db = client.Database(s.cfg.Name)

	logging.Info().
		Str("database", s.cfg.Name).
		Msg("Connected to MongoDB")
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

func (s *Store) users() *mongo.Collection {
	return s.db.Collection(s.cfg.UsersCollection)
}

func (s *Store) films() *mongo.Collection {
	return s.db.Collection(s.cfg.FilmsCollection)
}

func (s *Store) superlatives() *mongo.Collection {
	return s.db.Collection(s.cfg.SuperlativesCollection)
}
