// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package config provides centralized configuration management for Farmfeed.

Configuration is loaded with Koanf v2 from three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, config.yaml, /etc/farmfeed/config.yaml)
 3. Mapped environment variables

Only environment variables listed in envTransformFunc are read, so unrelated
process environment never leaks into the configuration.

# Configuration Structure

  - ServerConfig: HTTP listener and shutdown timing
  - DatabaseConfig: post store driver (duckdb, sqlite, memory) and breaker
  - FeedConfig: vocabulary, scoring weights, interest decay and fetch limits
  - SessionsConfig: anonymous session lifetime and janitor interval
  - WeatherConfig: OpenWeather credentials, cache and outbound rate limit
  - SecurityConfig: session token signing, CORS and inbound rate limits
  - LoggingConfig: zerolog level and output format

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Database:
  - DB_DRIVER: duckdb (default), sqlite or memory
  - DB_PATH: database file path (DUCKDB_PATH is accepted as an alias)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS, DB_QUERY_TIMEOUT, SEED_MOCK_DATA
  - DB_BREAKER_MIN_REQUESTS, DB_BREAKER_FAILURE_RATIO, DB_BREAKER_TIMEOUT

Feed:
  - FEED_VOCABULARY: comma-separated term list (empty = built-in list)
  - FEED_LIKE_WEIGHT, FEED_COMMENT_WEIGHT, FEED_VIEW_WEIGHT
  - FEED_RECENCY_BONUS, FEED_RECENCY_WINDOW
  - FEED_BASE_WEIGHT, FEED_SIMILARITY_SCALE, FEED_SIMILARITY_WEIGHT
  - FEED_INTEREST_DECAY, FEED_INTEREST_GAIN
  - FEED_MIN_SIMILARITY, FEED_MAX_RECOMMENDATIONS
  - FEED_LIMIT, FEED_TRENDING_LIMIT, FEED_TRENDING_TOP_N

Sessions:
  - SESSION_IDLE_TIMEOUT, SESSION_SWEEP_INTERVAL, SESSION_MAX

Weather:
  - OPENWEATHER_API_KEY, WEATHER_BASE_URL, WEATHER_TIMEOUT
  - WEATHER_CACHE_TTL, WEATHER_RATE_LIMIT, WEATHER_BURST

Security:
  - JWT_SECRET: session token signing secret (min 32 chars)
  - SESSION_TIMEOUT: session token lifetime
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated allowed origins

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
