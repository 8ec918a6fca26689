// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Feed     FeedConfig     `koanf:"feed"`
	Sessions SessionsConfig `koanf:"sessions"`
	Weather  WeatherConfig  `koanf:"weather"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// DatabaseConfig holds post store settings
type DatabaseConfig struct {
	// Driver selects the post store: duckdb, sqlite or memory.
	Driver       string        `koanf:"driver"`
	Path         string        `koanf:"path"`
	MaxMemory    string        `koanf:"max_memory"` // DuckDB only
	Threads      int           `koanf:"threads"`    // DuckDB threads (0 = use NumCPU)
	QueryTimeout time.Duration `koanf:"query_timeout"`
	SeedMockData bool          `koanf:"seed_mock_data"` // Seed sample farm posts into an empty store

	Breaker CircuitBreakerConfig `koanf:"breaker"`
}

// CircuitBreakerConfig controls the breaker in front of the post store.
type CircuitBreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// FeedConfig holds ranking settings.
//
// Environment Variables:
//   - FEED_VOCABULARY: comma-separated terms; empty uses the built-in list
//   - FEED_INTEREST_DECAY: weight kept from the previous interest (default: 0.9)
//   - FEED_MIN_SIMILARITY: recommendation threshold, exclusive (default: 0.05)
type FeedConfig struct {
	Vocabulary []string `koanf:"vocabulary"`

	LikeWeight       float64       `koanf:"like_weight"`
	CommentWeight    float64       `koanf:"comment_weight"`
	ViewWeight       float64       `koanf:"view_weight"`
	RecencyBonus     float64       `koanf:"recency_bonus"`
	RecencyWindow    time.Duration `koanf:"recency_window"`
	BaseWeight       float64       `koanf:"base_weight"`
	SimilarityScale  float64       `koanf:"similarity_scale"`
	SimilarityWeight float64       `koanf:"similarity_weight"`

	InterestDecay float64 `koanf:"interest_decay"`
	InterestGain  float64 `koanf:"interest_gain"`

	MinSimilarity      float64 `koanf:"min_similarity"`
	MaxRecommendations int     `koanf:"max_recommendations"`

	FeedLimit     int `koanf:"feed_limit"`
	TrendingLimit int `koanf:"trending_limit"`
	TrendingTopN  int `koanf:"trending_top_n"`
}

// SessionsConfig holds anonymous session settings
type SessionsConfig struct {
	// IdleTimeout discards a session (and its interest vector) after this
	// long without a request.
	IdleTimeout   time.Duration `koanf:"idle_timeout"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	MaxSessions   int           `koanf:"max_sessions"`
}

// WeatherConfig holds OpenWeather settings
type WeatherConfig struct {
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	RateLimit float64       `koanf:"rate_limit"` // outbound requests per second
	Burst     int           `koanf:"burst"`
}

// Enabled reports whether a real API key is configured.
func (w WeatherConfig) Enabled() bool {
	return w.APIKey != "" && !containsPlaceholder(w.APIKey)
}

// SecurityConfig holds session token, CORS and rate limit settings
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
