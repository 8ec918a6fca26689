// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

// Package database provides the SQL-backed post store for Farmfeed.
//
// # Overview
//
// DB implements feed.PostStore on top of database/sql. Two embedded engines
// are supported and selected by config.DatabaseConfig.Driver:
//   - duckdb: github.com/duckdb/duckdb-go/v2 (CGO, default)
//   - sqlite: modernc.org/sqlite (pure Go, no CGO required)
//
// Both drivers share one schema and one set of queries with positional
// "?" placeholders.
//
// # Architecture
//
//   - database.go: connection lifecycle and driver selection
//   - database_schema.go: table and index creation
//   - posts.go: feed.PostStore implementation
//   - seed.go: sample farm posts for demos and screenshots
//   - errors.go: error classification and cleanup helpers
//
// # Error Handling
//
// Infrastructure failures (connection loss, timeouts, driver errors) are
// wrapped with feed.ErrStoreUnavailable so callers and the circuit breaker
// in internal/store can tell them apart from feed.ErrPostNotFound.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	posts, err := db.FetchRecent(ctx, 50, true)
//
// # Thread Safety
//
// DB is safe for concurrent use. SQLite connections are limited to one
// open connection so in-memory databases are shared by all callers.
package database
