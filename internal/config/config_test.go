// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8039, cfg.Server.Port)
	assert.Equal(t, "letterboxd", cfg.Database.Name)
	assert.Equal(t, DefaultGenres, cfg.Engine.Genres)
	assert.False(t, cfg.Refresh.Enabled)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty database uri", func(c *Config) { c.Database.URI = "" }},
		{"empty database name", func(c *Config) { c.Database.Name = "" }},
		{"empty genre universe", func(c *Config) { c.Engine.Genres = nil }},
		{"min film ratings zero", func(c *Config) { c.Engine.MinFilmRatings = 0 }},
		{"min shared films zero", func(c *Config) { c.Engine.MinSharedFilms = 0 }},
		{"negative workers", func(c *Config) { c.Engine.Workers = -1 }},
		{"max page below default", func(c *Config) { c.API.MaxPageSize = 1 }},
		{"refresh interval too short", func(c *Config) {
			c.Refresh.Enabled = true
			c.Refresh.Interval = time.Second
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9100
engine:
  min_film_ratings: 5
refresh:
  enabled: true
  interval: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Engine.MinFilmRatings)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Refresh.Interval)
	// Untouched keys keep their defaults.
	assert.Equal(t, "letterboxd", cfg.Database.Name)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9100\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9200")
	t.Setenv("ENGINE_GENRES", "Drama, Horror ,Comedy")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, []string{"Drama", "Horror", "Comedy"}, cfg.Engine.Genres)
}

func TestEnvTransformSkipsUnknownVariables(t *testing.T) {
	assert.Equal(t, "database.uri", envTransformFunc("DB_URI"))
	assert.Equal(t, "server.port", envTransformFunc("HTTP_PORT"))
	assert.Empty(t, envTransformFunc("PATH"))
	assert.Empty(t, envTransformFunc("HOME"))
}
