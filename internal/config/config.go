// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package config

import (
	"fmt"
	"time"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Engine   EngineConfig   `koanf:"engine"`
	API      APIConfig      `koanf:"api"`
	Refresh  RefreshConfig  `koanf:"refresh"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds MongoDB connection settings. The scraper and the
// API share one database; collection names stay configurable so a
// staging scrape can live alongside production data.
type DatabaseConfig struct {
	URI                    string        `koanf:"uri"`
	Name                   string        `koanf:"name"`
	UsersCollection        string        `koanf:"users_collection"`
	FilmsCollection        string        `koanf:"films_collection"`
	SuperlativesCollection string        `koanf:"superlatives_collection"`
	ConnectTimeout         time.Duration `koanf:"connect_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// EngineConfig holds stats-engine settings.
type EngineConfig struct {
	// Genres is the closed genre universe; films tagged with genres
	// outside it do not contribute genre stats.
	Genres []string `koanf:"genres"`

	// MinFilmRatings is the minimum group ratings a film needs to
	// qualify for film superlatives.
	MinFilmRatings int `koanf:"min_film_ratings"`

	// MinSharedFilms is the minimum shared rated films a user pair
	// needs to qualify for the BFFs/Enemies superlatives.
	MinSharedFilms int `koanf:"min_shared_films"`

	// LikeTieDefault resolves an exactly split weighted like vote.
	LikeTieDefault bool `koanf:"like_tie_default"`

	// Workers bounds the per-user fan-out. 0 means runtime.NumCPU().
	Workers int `koanf:"workers"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
}

// RefreshConfig holds the periodic recompute settings.
type RefreshConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Interval  time.Duration `koanf:"interval"`
	OnStartup bool          `koanf:"on_startup"`
}

// DefaultGenres is the Letterboxd/TMDB genre universe the scraper emits.
var DefaultGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Family", "Fantasy", "History", "Horror", "Music", "Mystery",
	"Romance", "Science Fiction", "Thriller", "War", "Western", "TV Movie",
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8039,
			Timeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			URI:                    "mongodb://127.0.0.1:27017",
			Name:                   "letterboxd",
			UsersCollection:        "users",
			FilmsCollection:        "films",
			SuperlativesCollection: "superlatives",
			ConnectTimeout:         10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Engine: EngineConfig{
			Genres:         DefaultGenres,
			MinFilmRatings: 3,
			MinSharedFilms: 3,
			LikeTieDefault: false,
			Workers:        0, // 0 = runtime.NumCPU()
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CacheTTL:        5 * time.Minute,
		},
		Refresh: RefreshConfig{
			Enabled:   false, // opt-in: scraping cadence decides when stats move
			Interval:  6 * time.Hour,
			OnStartup: false,
		},
	}
}

// Validate checks the configuration for values that would fail at
// runtime in confusing ways.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Database.URI == "" {
		return fmt.Errorf("database.uri is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if len(c.Engine.Genres) == 0 {
		return fmt.Errorf("engine.genres must not be empty")
	}
	if c.Engine.MinFilmRatings < 1 {
		return fmt.Errorf("engine.min_film_ratings must be >= 1")
	}
	if c.Engine.MinSharedFilms < 1 {
		return fmt.Errorf("engine.min_shared_films must be >= 1")
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must be >= 0")
	}
	if c.API.DefaultPageSize < 1 || c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api page sizes invalid: default %d, max %d",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if c.Refresh.Enabled && c.Refresh.Interval < time.Minute {
		return fmt.Errorf("refresh.interval %s too short; minimum 1m", c.Refresh.Interval)
	}
	return nil
}
