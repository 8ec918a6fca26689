// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import (
	"context"
	"errors"
)

var (
	// ErrStoreUnavailable indicates the post store could not be reached.
	ErrStoreUnavailable = errors.New("post store unavailable")

	// ErrPostNotFound indicates no post exists with the requested ID.
	ErrPostNotFound = errors.New("post not found")

	// ErrEmptyPost indicates a post has neither content nor media.
	ErrEmptyPost = errors.New("post has no content or media")
)

// PostStore is the document store holding published posts.
// It is typically implemented by the database layer. Implementations wrap
// connectivity failures in ErrStoreUnavailable.
type PostStore interface {
	// FetchRecent returns up to limit posts. When orderByRecency is true the
	// newest posts come first; otherwise the store's natural order is used.
	FetchRecent(ctx context.Context, limit int, orderByRecency bool) ([]Post, error)

	// IncrementLikes adds one like to the post.
	IncrementLikes(ctx context.Context, postID string) error

	// GetPost returns a single post or ErrPostNotFound.
	GetPost(ctx context.Context, postID string) (Post, error)

	// CreatePost stores a new post and returns it with its assigned ID.
	CreatePost(ctx context.Context, post Post) (Post, error)
}
