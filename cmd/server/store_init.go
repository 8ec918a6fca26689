// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/database"
	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/store"
)

const driverMemory = "memory"

// postStore is the opened store plus its cleanup.
type postStore struct {
	store feed.PostStore
	close func() error
}

// initPostStore opens the configured post store, seeds it when asked and
// wraps it in the circuit breaker.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initPostStore(ctx context.Context, cfg *config.DatabaseConfig, logger zerolog.Logger) (*postStore, error) {
	var (
		base    feed.PostStore
		closeFn = func() error { return nil }
	)

	switch cfg.Driver {
	case driverMemory:
		var seed []feed.Post
		if cfg.SeedMockData {
			seed = database.MockPosts(time.Now())
		}
		base = store.NewMemoryStore(seed...)
		logger.Warn().Int("posts", len(seed)).Msg("Using in-memory post store; posts are lost on restart")

	default:
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if cfg.SeedMockData {
			n, err := db.SeedMockData(ctx)
			if err != nil {
				if closeErr := db.Close(); closeErr != nil {
					logger.Error().Err(closeErr).Msg("Error closing database")
				}
				return nil, fmt.Errorf("failed to seed mock data: %w", err)
			}
			logger.Info().Int("posts", n).Msg("Mock data seeding complete")
		}
		base = db
		closeFn = db.Close
		logger.Info().Str("driver", db.Driver()).Str("path", cfg.Path).Msg("Database initialized successfully")
	}

	return &postStore{
		store: store.NewCircuitBreakerStore(base, breakerConfig(&cfg.Breaker)),
		close: closeFn,
	}, nil
}

// breakerConfig maps the breaker settings, keeping defaults for unset fields.
func breakerConfig(cfg *config.CircuitBreakerConfig) store.BreakerConfig {
	bc := store.DefaultBreakerConfig()
	if cfg.MaxRequests > 0 {
		bc.MaxRequests = cfg.MaxRequests
	}
	if cfg.Interval > 0 {
		bc.Interval = cfg.Interval
	}
	if cfg.Timeout > 0 {
		bc.Timeout = cfg.Timeout
	}
	if cfg.MinRequests > 0 {
		bc.MinRequests = cfg.MinRequests
	}
	if cfg.FailureRatio > 0 {
		bc.FailureRatio = cfg.FailureRatio
	}
	return bc
}
