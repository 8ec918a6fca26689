// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/farmfeed/config.yaml",
	"/etc/farmfeed/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8417,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Driver:       "duckdb",
			Path:         "/data/farmfeed.duckdb",
			MaxMemory:    "512MB",
			Threads:      0, // 0 = use runtime.NumCPU()
			QueryTimeout: 5 * time.Second,
			SeedMockData: false,
			Breaker: CircuitBreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Feed: FeedConfig{
			Vocabulary:         nil, // built-in agricultural terms
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
		},
		Sessions: SessionsConfig{
			IdleTimeout:   24 * time.Hour,
			SweepInterval: 5 * time.Minute,
			MaxSessions:   10000,
		},
		Weather: WeatherConfig{
			APIKey:    "",
			BaseURL:   "https://api.openweathermap.org",
			Timeout:   10 * time.Second,
			CacheTTL:  10 * time.Minute,
			RateLimit: 1, // free tier allows 60 calls/minute
			Burst:     5,
		},
		Security: SecurityConfig{
			JWTSecret:         "",
			SessionTimeout:    24 * time.Hour,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"feed.vocabulary",
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envMappings maps supported environment variable names (lower-cased) to
// koanf config paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Database
	"db_driver":                "database.driver",
	"db_path":                  "database.path",
	"duckdb_path":              "database.path",
	"duckdb_max_memory":        "database.max_memory",
	"duckdb_threads":           "database.threads",
	"db_query_timeout":         "database.query_timeout",
	"seed_mock_data":           "database.seed_mock_data",
	"db_breaker_max_requests":  "database.breaker.max_requests",
	"db_breaker_interval":      "database.breaker.interval",
	"db_breaker_timeout":       "database.breaker.timeout",
	"db_breaker_min_requests":  "database.breaker.min_requests",
	"db_breaker_failure_ratio": "database.breaker.failure_ratio",

	// Feed ranking
	"feed_vocabulary":          "feed.vocabulary",
	"feed_like_weight":         "feed.like_weight",
	"feed_comment_weight":      "feed.comment_weight",
	"feed_view_weight":         "feed.view_weight",
	"feed_recency_bonus":       "feed.recency_bonus",
	"feed_recency_window":      "feed.recency_window",
	"feed_base_weight":         "feed.base_weight",
	"feed_similarity_scale":    "feed.similarity_scale",
	"feed_similarity_weight":   "feed.similarity_weight",
	"feed_interest_decay":      "feed.interest_decay",
	"feed_interest_gain":       "feed.interest_gain",
	"feed_min_similarity":      "feed.min_similarity",
	"feed_max_recommendations": "feed.max_recommendations",
	"feed_limit":               "feed.feed_limit",
	"feed_trending_limit":      "feed.trending_limit",
	"feed_trending_top_n":      "feed.trending_top_n",

	// Sessions
	"session_idle_timeout":   "sessions.idle_timeout",
	"session_sweep_interval": "sessions.sweep_interval",
	"session_max":            "sessions.max_sessions",

	// Weather
	"openweather_api_key": "weather.api_key",
	"weather_base_url":    "weather.base_url",
	"weather_timeout":     "weather.timeout",
	"weather_cache_ttl":   "weather.cache_ttl",
	"weather_rate_limit":  "weather.rate_limit",
	"weather_burst":       "weather.burst",

	// Security
	"jwt_secret":          "security.jwt_secret",
	"session_timeout":     "security.session_timeout",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - FEED_INTEREST_DECAY -> feed.interest_decay
//   - OPENWEATHER_API_KEY -> weather.api_key
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
