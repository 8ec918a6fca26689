// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	return errors.Join(
		c.validateServer(),
		c.validateDatabase(),
		c.validateFeed(),
		c.validateSessions(),
		c.validateWeather(),
		c.validateSecurity(),
		c.validateLogging(),
	)
}

// validEnvironments defines the allowed deployment environments
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validDrivers defines the supported post store drivers
var validDrivers = map[string]bool{
	"duckdb": true,
	"sqlite": true,
	"memory": true,
}

// validateDatabase validates post store configuration
func (c *Config) validateDatabase() error {
	db := c.Database
	if !validDrivers[db.Driver] {
		return fmt.Errorf("DB_DRIVER must be one of: duckdb, sqlite, memory")
	}
	if db.Driver != "memory" && db.Path == "" {
		return fmt.Errorf("DB_PATH is required for driver %s", db.Driver)
	}
	if db.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	if db.Breaker.FailureRatio <= 0 || db.Breaker.FailureRatio > 1 {
		return fmt.Errorf("DB_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", db.Breaker.FailureRatio)
	}
	if db.Breaker.Timeout <= 0 {
		return fmt.Errorf("DB_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateFeed checks the ranking parameters that would otherwise break
// scoring. The feed package repeats these checks on its own Config.
func (c *Config) validateFeed() error {
	f := c.Feed
	if f.RecencyWindow <= 0 {
		return fmt.Errorf("FEED_RECENCY_WINDOW must be positive")
	}
	if f.InterestDecay < 0 || f.InterestDecay >= 1 {
		return fmt.Errorf("FEED_INTEREST_DECAY must be in [0, 1), got %v", f.InterestDecay)
	}
	if f.MinSimilarity < 0 || f.MinSimilarity > 1 {
		return fmt.Errorf("FEED_MIN_SIMILARITY must be in [0, 1], got %v", f.MinSimilarity)
	}
	if f.FeedLimit < 1 || f.TrendingLimit < 1 {
		return fmt.Errorf("FEED_LIMIT and FEED_TRENDING_LIMIT must be positive")
	}
	if f.TrendingTopN < 0 || f.MaxRecommendations < 0 {
		return fmt.Errorf("FEED_TRENDING_TOP_N and FEED_MAX_RECOMMENDATIONS must be non-negative")
	}
	return nil
}

// validateSessions validates anonymous session configuration
func (c *Config) validateSessions() error {
	if c.Sessions.IdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Sessions.MaxSessions < 1 {
		return fmt.Errorf("SESSION_MAX must be at least 1")
	}
	return nil
}

// validateWeather validates weather configuration (only if enabled)
func (c *Config) validateWeather() error {
	if !c.Weather.Enabled() {
		return nil
	}
	if err := validateBaseURL(c.Weather.BaseURL, "WEATHER_BASE_URL"); err != nil {
		return err
	}
	if c.Weather.RateLimit <= 0 || c.Weather.Burst < 1 {
		return fmt.Errorf("WEATHER_RATE_LIMIT and WEATHER_BURST must be positive")
	}
	return nil
}

// Rate limit bounds
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
	minJWTSecretLength   = 32
)

// validateSecurity validates session token, CORS and rate limit configuration
func (c *Config) validateSecurity() error {
	if err := c.validateJWTSecret(); err != nil {
		return err
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateJWTSecret validates the session token secret. An empty secret is
// allowed outside production; the server then generates an ephemeral one.
func (c *Config) validateJWTSecret() error {
	secret := c.Security.JWTSecret
	if secret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		return nil
	}
	if len(secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters for security", minJWTSecretLength)
	}
	if containsPlaceholder(secret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// validateCORS rejects wildcard origins in production
func (c *Config) validateCORS() error {
	if !c.IsProduction() {
		return nil
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
		}
	}
	return nil
}

// validateRateLimits validates rate limiting configuration
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_API_KEY",
	"YOUR_OPENWEATHER",
	"PLACEHOLDER",
	"EXAMPLE",
}

// containsPlaceholder checks if a value contains common placeholder patterns
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
