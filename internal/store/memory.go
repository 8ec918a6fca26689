// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tomtom215/farmfeed/internal/feed"
)

// MemoryStore is a feed.PostStore held in process memory.
// It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []feed.Post
	byID  map[string]int
}

// NewMemoryStore returns a store seeded with posts. Posts without an ID are
// assigned one.
func NewMemoryStore(posts ...feed.Post) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]int, len(posts))}
	for _, p := range posts {
		s.insert(p)
	}
	return s
}

func (s *MemoryStore) insert(p feed.Post) feed.Post {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Media != nil {
		m := *p.Media
		p.Media = &m
	}
	s.byID[p.ID] = len(s.posts)
	s.posts = append(s.posts, p)
	return p
}

// FetchRecent returns up to limit posts, newest first when orderByRecency is
// set and in insertion order otherwise.
func (s *MemoryStore) FetchRecent(ctx context.Context, limit int, orderByRecency bool) ([]feed.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]feed.Post, len(s.posts))
	copy(out, s.posts)
	s.mu.RUnlock()

	if orderByRecency {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp > out[j].Timestamp
		})
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// IncrementLikes adds one like to the post.
func (s *MemoryStore) IncrementLikes(ctx context.Context, postID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[postID]
	if !ok {
		return feed.ErrPostNotFound
	}
	s.posts[i].Likes++
	return nil
}

// GetPost returns the post with the given ID.
func (s *MemoryStore) GetPost(ctx context.Context, postID string) (feed.Post, error) {
	if err := ctx.Err(); err != nil {
		return feed.Post{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[postID]
	if !ok {
		return feed.Post{}, feed.ErrPostNotFound
	}
	return s.posts[i], nil
}

// CreatePost stores a post under a new ID.
func (s *MemoryStore) CreatePost(ctx context.Context, post feed.Post) (feed.Post, error) {
	if err := ctx.Err(); err != nil {
		return feed.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = ""
	return s.insert(post), nil
}

// Len returns the number of stored posts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
