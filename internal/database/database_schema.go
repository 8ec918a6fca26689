// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// createTables creates all tables if they do not exist
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the table creation SQL statements.
// The seq column records insertion order for unordered fetches.
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS posts (
			seq BIGINT NOT NULL,
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL DEFAULT '',
			media_url TEXT,
			media_type TEXT,
			likes BIGINT NOT NULL DEFAULT 0,
			views BIGINT NOT NULL DEFAULT 0,
			comments_count BIGINT NOT NULL DEFAULT 0,
			created_at_ms BIGINT NOT NULL
		)`,
	}
}

// createIndexes creates indexes for the feed queries
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at_ms)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_seq ON posts(seq)`,
	}
	for _, query := range indexes {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
