// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package main is the entry point for the farmfeed server.

Farmfeed ranks posts of a farming community: a personalized feed per
anonymous session, a trending list and recommendations drawn from the
reader's recent likes, plus a local weather lookup.

# Application Architecture

	RootSupervisor ("farmfeed")
	├── DataSupervisor ("data-layer")
	│   └── Session janitor (expires idle sessions)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Post store: DuckDB, SQLite or in-memory, behind a circuit breaker
 4. Feed engine: vocabulary, scoring weights and interest update rule
 5. Sessions and session tokens (HS256 JWT)
 6. Weather client (OpenWeather, optional)
 7. Supervisor Tree: Suture v4 process supervision
 8. HTTP Server: Chi router with middleware stack

# Configuration

Priority: Environment variables > Config file (CONFIG_PATH or ./config.yaml) > Defaults

	HTTP_PORT=8417
	ENVIRONMENT=development      # production requires JWT_SECRET
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	DB_DRIVER=duckdb             # duckdb, sqlite or memory
	DB_PATH=/data/farmfeed.duckdb
	SEED_MOCK_DATA=false         # sample posts for an empty store

	JWT_SECRET=<32+ chars>       # random per process in development when unset
	SESSION_TIMEOUT=24h          # token lifetime
	SESSION_IDLE_TIMEOUT=24h     # interest vectors are dropped after this much inactivity
	CORS_ORIGINS=https://farm.example

	FEED_VOCABULARY=rice,wheat,...   # empty uses the built-in agricultural terms
	FEED_INTEREST_DECAY=0.9
	FEED_MIN_SIMILARITY=0.05

	OPENWEATHER_API_KEY=<key>    # weather endpoint reports NOT_CONFIGURED without it

# Signals

SIGINT and SIGTERM cancel the supervisor tree; the HTTP server drains
within SHUTDOWN_TIMEOUT and the post store is closed afterwards.
*/
package main
