// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/metrics"
)

var _ feed.PostStore = (*DB)(nil)

const postColumns = `id, content, media_url, media_type, likes, views, comments_count, created_at_ms`

// FetchRecent returns up to limit posts, newest first when orderByRecency
// is set and in insertion order otherwise.
func (db *DB) FetchRecent(ctx context.Context, limit int, orderByRecency bool) (posts []feed.Post, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("db_fetch_recent", time.Since(start), err) }()

	if limit <= 0 {
		return []feed.Post{}, nil
	}

	order := "seq ASC"
	if orderByRecency {
		order = "created_at_ms DESC, seq ASC"
	}
	query := fmt.Sprintf(`SELECT %s FROM posts ORDER BY %s LIMIT ?`, postColumns, order)

	qctx, cancel := db.queryContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(qctx, query, limit)
	if err != nil {
		return nil, unavailable("fetch recent posts", err)
	}
	defer closeQuietly(rows)

	posts = make([]feed.Post, 0, limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, unavailable("scan post", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate posts", err)
	}
	return posts, nil
}

// IncrementLikes adds one like to the post.
func (db *DB) IncrementLikes(ctx context.Context, postID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("db_increment_likes", time.Since(start), err) }()

	qctx, cancel := db.queryContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(qctx, `UPDATE posts SET likes = likes + 1 WHERE id = ?`, postID)
	if err != nil {
		return unavailable("increment likes", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return unavailable("increment likes", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", feed.ErrPostNotFound, postID)
	}
	return nil
}

// GetPost returns a single post or feed.ErrPostNotFound.
func (db *DB) GetPost(ctx context.Context, postID string) (post feed.Post, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("db_get_post", time.Since(start), err) }()

	qctx, cancel := db.queryContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(qctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, postID)
	post, err = scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return feed.Post{}, fmt.Errorf("%w: %s", feed.ErrPostNotFound, postID)
	}
	if err != nil {
		return feed.Post{}, unavailable("get post", err)
	}
	return post, nil
}

// CreatePost stores a new post under a fresh UUID and returns it.
func (db *DB) CreatePost(ctx context.Context, post feed.Post) (created feed.Post, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("db_create_post", time.Since(start), err) }()

	post.ID = uuid.New().String()
	if err := db.insertPost(ctx, post); err != nil {
		return feed.Post{}, err
	}
	return post, nil
}

// Count returns the number of stored posts.
func (db *DB) Count(ctx context.Context) (int, error) {
	qctx, cancel := db.queryContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(qctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, unavailable("count posts", err)
	}
	return n, nil
}

// insertPost writes a post whose ID is already set.
func (db *DB) insertPost(ctx context.Context, post feed.Post) error {
	var mediaURL, mediaType sql.NullString
	if post.HasMedia() {
		mediaURL = sql.NullString{String: post.Media.URL, Valid: true}
		mediaType = sql.NullString{String: post.Media.Type, Valid: post.Media.Type != ""}
	}

	qctx, cancel := db.queryContext(ctx)
	defer cancel()

	db.insertMu.Lock()
	defer db.insertMu.Unlock()

	var seq int64
	if err := db.conn.QueryRowContext(qctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM posts`).Scan(&seq); err != nil {
		return unavailable("next post sequence", err)
	}

	_, err := db.conn.ExecContext(qctx,
		`INSERT INTO posts (seq, `+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, post.ID, post.Content, mediaURL, mediaType,
		post.Likes, post.Views, post.CommentsCount, post.Timestamp,
	)
	if err != nil {
		return unavailable("insert post", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (feed.Post, error) {
	var (
		post                feed.Post
		mediaURL, mediaType sql.NullString
	)
	if err := row.Scan(
		&post.ID, &post.Content, &mediaURL, &mediaType,
		&post.Likes, &post.Views, &post.CommentsCount, &post.Timestamp,
	); err != nil {
		return feed.Post{}, err
	}
	if mediaURL.Valid && strings.TrimSpace(mediaURL.String) != "" {
		post.Media = &feed.Media{URL: mediaURL.String, Type: mediaType.String}
	}
	return post, nil
}
