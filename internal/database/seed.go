// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/logging"
)

// mockPost describes a sample post relative to the seeding time.
type mockPost struct {
	content  string
	mediaURL string
	age      time.Duration
	likes    int64
	views    int64
	comments int64
}

var mockPosts = []mockPost{
	{content: "Transplanted the rice seedlings today, water level looks good in the paddy", age: 2 * time.Hour, likes: 14, views: 120, comments: 3},
	{content: "Drip irrigation cut our water use by half on the tomato beds", age: 5 * time.Hour, likes: 31, views: 410, comments: 9},
	{content: "Aphids on the cotton again. Neem oil spray or something stronger?", age: 9 * time.Hour, likes: 7, views: 95, comments: 12},
	{content: "Soil test came back low on nitrogen, switching to compost and green manure", age: 20 * time.Hour, likes: 22, views: 260, comments: 5},
	{mediaURL: "https://images.example.com/farmfeed/wheat-harvest.jpg", age: 26 * time.Hour, likes: 48, views: 700, comments: 6},
	{content: "Wheat harvest done before the rain. Yield up from last season", age: 30 * time.Hour, likes: 55, views: 820, comments: 14},
	{content: "Maize stalks drying out in this heat, planning an extra irrigation round", age: 40 * time.Hour, likes: 9, views: 150, comments: 2},
	{content: "Mandi price for onion dropped again this week, holding stock for now", age: 52 * time.Hour, likes: 18, views: 300, comments: 11},
	{content: "Organic fertilizer from cow dung slurry is working well on the sugarcane", age: 70 * time.Hour, likes: 12, views: 140, comments: 4},
	{content: "Drone spraying demo at the village tomorrow, pesticide use should drop", age: 96 * time.Hour, likes: 40, views: 650, comments: 20},
}

// MockPosts returns the sample farm posts dated relative to now, oldest
// first so that insertion order matches creation order.
func MockPosts(now time.Time) []feed.Post {
	posts := make([]feed.Post, 0, len(mockPosts))
	for i := len(mockPosts) - 1; i >= 0; i-- {
		mp := mockPosts[i]
		post := feed.Post{
			ID:            uuid.New().String(),
			Content:       mp.content,
			Likes:         mp.likes,
			Views:         mp.views,
			CommentsCount: mp.comments,
			Timestamp:     now.Add(-mp.age).UnixMilli(),
		}
		if mp.mediaURL != "" {
			post.Media = &feed.Media{URL: mp.mediaURL, Type: "image"}
		}
		posts = append(posts, post)
	}
	return posts
}

// SeedMockData inserts sample farm posts when the posts table is empty.
// This is intended for demos and screenshot capture only.
func (db *DB) SeedMockData(ctx context.Context) (int, error) {
	count, err := db.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logging.Debug().Int("posts", count).Msg("Skipping mock data, posts table not empty")
		return 0, nil
	}

	posts := MockPosts(time.Now())
	logging.Info().Int("posts", len(posts)).Msg("Seeding database with sample farm posts")

	for i, post := range posts {
		if err := db.insertPost(ctx, post); err != nil {
			return 0, fmt.Errorf("failed to seed post %d: %w", i, err)
		}
	}

	return len(posts), nil
}
