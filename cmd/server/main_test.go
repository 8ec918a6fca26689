// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package main

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/store"
)

func defaultFeedSettings() config.FeedConfig {
	return config.FeedConfig{
		LikeWeight:         3,
		CommentWeight:      5,
		ViewWeight:         1,
		RecencyBonus:       10,
		RecencyWindow:      48 * time.Hour,
		BaseWeight:         0.7,
		SimilarityScale:    10,
		SimilarityWeight:   0.3,
		InterestDecay:      0.9,
		InterestGain:       0.3,
		MinSimilarity:      0.05,
		MaxRecommendations: 5,
		FeedLimit:          50,
		TrendingLimit:      100,
		TrendingTopN:       5,
	}
}

func TestBuildFeedConfig(t *testing.T) {
	settings := defaultFeedSettings()
	got := buildFeedConfig(&settings)
	if !reflect.DeepEqual(got, feed.DefaultConfig()) {
		t.Errorf("buildFeedConfig() = %+v, want %+v", got, feed.DefaultConfig())
	}

	settings.InterestDecay = 0.5
	settings.TrendingTopN = 3
	got = buildFeedConfig(&settings)
	if got.Interest.Decay != 0.5 {
		t.Errorf("Interest.Decay = %v, want 0.5", got.Interest.Decay)
	}
	if got.Limits.TrendingTopN != 3 {
		t.Errorf("Limits.TrendingTopN = %d, want 3", got.Limits.TrendingTopN)
	}
}

func TestBuildVocabulary(t *testing.T) {
	tests := []struct {
		name    string
		terms   []string
		wantLen int
		wantErr bool
	}{
		{"default when empty", nil, feed.DefaultVocabulary().Len(), false},
		{"custom terms", []string{"rice", "wheat", "millet"}, 3, false},
		{"uppercase rejected", []string{"Rice"}, 0, true},
		{"duplicate rejected", []string{"rice", "rice"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab, err := buildVocabulary(tt.terms)
			if tt.wantErr {
				if !errors.Is(err, feed.ErrInvalidVocabulary) {
					t.Fatalf("error = %v, want ErrInvalidVocabulary", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if vocab.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", vocab.Len(), tt.wantLen)
			}
		})
	}
}

func TestBreakerConfig(t *testing.T) {
	got := breakerConfig(&config.CircuitBreakerConfig{})
	if got != store.DefaultBreakerConfig() {
		t.Errorf("zero settings = %+v, want defaults", got)
	}

	got = breakerConfig(&config.CircuitBreakerConfig{
		MaxRequests:  1,
		Timeout:      5 * time.Second,
		FailureRatio: 0.9,
	})
	if got.MaxRequests != 1 || got.Timeout != 5*time.Second || got.FailureRatio != 0.9 {
		t.Errorf("overrides not applied: %+v", got)
	}
	if got.Interval != store.DefaultBreakerConfig().Interval {
		t.Errorf("Interval = %v, want default", got.Interval)
	}
}

func TestInitJWT(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		secret      string
		wantErr     bool
	}{
		{"configured secret", "production", "0123456789abcdef0123456789abcdef", false},
		{"ephemeral in development", "development", "", false},
		{"missing in production", "production", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Environment = tt.environment
			cfg.Security.JWTSecret = tt.secret
			cfg.Security.SessionTimeout = time.Hour

			manager, err := initJWT(cfg, zerolog.Nop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			token, _, err := manager.GenerateToken("sess-1")
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}
			claims, err := manager.ValidateToken(token)
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}
			if claims.SessionID != "sess-1" {
				t.Errorf("SessionID = %q, want sess-1", claims.SessionID)
			}
			if cfg.Security.JWTSecret != tt.secret {
				t.Error("configuration secret was modified")
			}
		})
	}
}

func TestInitPostStore_Memory(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		seed      bool
		wantPosts bool
	}{
		{"seeded", true, true},
		{"empty", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := initPostStore(ctx, &config.DatabaseConfig{Driver: driverMemory, SeedMockData: tt.seed}, zerolog.Nop())
			if err != nil {
				t.Fatalf("initPostStore() error = %v", err)
			}
			defer func() {
				if err := ps.close(); err != nil {
					t.Errorf("close() error = %v", err)
				}
			}()

			posts, err := ps.store.FetchRecent(ctx, 50, true)
			if err != nil {
				t.Fatalf("FetchRecent() error = %v", err)
			}
			if got := len(posts) > 0; got != tt.wantPosts {
				t.Errorf("has posts = %v, want %v", got, tt.wantPosts)
			}
			if _, ok := ps.store.(*store.CircuitBreakerStore); !ok {
				t.Errorf("store type = %T, want *store.CircuitBreakerStore", ps.store)
			}
		})
	}
}

func TestInitFeedEngine(t *testing.T) {
	ctx := context.Background()
	ps, err := initPostStore(ctx, &config.DatabaseConfig{Driver: driverMemory, SeedMockData: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("initPostStore() error = %v", err)
	}

	cfg := &config.Config{Feed: defaultFeedSettings()}
	engine, err := initFeedEngine(cfg, ps.store, zerolog.Nop())
	if err != nil {
		t.Fatalf("initFeedEngine() error = %v", err)
	}

	view := engine.Refresh(ctx, engine.NewTracker())
	if view.FeedErr != nil || view.TrendingErr != nil {
		t.Fatalf("Refresh() errors: feed=%v trending=%v", view.FeedErr, view.TrendingErr)
	}
	if len(view.Feed) == 0 {
		t.Error("expected seeded posts in the feed")
	}
	if len(view.Trending) != 5 {
		t.Errorf("len(Trending) = %d, want 5", len(view.Trending))
	}
	if len(view.Recommended) != 0 {
		t.Errorf("len(Recommended) = %d, want 0 before any like", len(view.Recommended))
	}

	cfg.Feed.InterestDecay = 1.5
	if _, err := initFeedEngine(cfg, ps.store, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid interest decay")
	}
}
