// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/farmfeed/internal/feed"
)

const (
	trendingSnippetLength    = 80
	recommendedSnippetLength = 160
	mediaPlaceholder         = "[media]"
)

// FeedItem is one post in the main feed.
type FeedItem struct {
	ID            string      `json:"id"`
	Content       string      `json:"content"`
	Media         *feed.Media `json:"media,omitempty"`
	Likes         int64       `json:"likes"`
	Views         int64       `json:"views"`
	CommentsCount int64       `json:"comments_count"`
	Timestamp     int64       `json:"timestamp"`
	TimeAgo       string      `json:"time_ago"`
	BaseScore     float64     `json:"base_score"`
	Similarity    float64     `json:"similarity"`
	TotalScore    float64     `json:"total_score"`
}

// TrendingItem is one entry in the trending sidebar.
type TrendingItem struct {
	ID        string  `json:"id"`
	Snippet   string  `json:"snippet"`
	Likes     int64   `json:"likes"`
	BaseScore float64 `json:"base_score"`
}

// RecommendedItem is one suggested post.
type RecommendedItem struct {
	ID           string  `json:"id"`
	Snippet      string  `json:"snippet"`
	MatchPercent int     `json:"match_percent"`
	Similarity   float64 `json:"similarity"`
}

// FeedSection is a list plus the message shown when it is empty.
type FeedSection[T any] struct {
	Items   []T    `json:"items"`
	Message string `json:"message,omitempty"`
	Error   bool   `json:"error,omitempty"`
}

// FeedResponse is the payload of GET /api/v1/feed and POST .../like.
type FeedResponse struct {
	Feed        FeedSection[FeedItem]        `json:"feed"`
	Trending    FeedSection[TrendingItem]    `json:"trending"`
	Recommended FeedSection[RecommendedItem] `json:"recommended"`
	Engagements int                          `json:"engagements"`
	GeneratedAt time.Time                    `json:"generated_at"`
}

// newFeedResponse renders an engine view. Relative times are measured
// against the moment the view was ranked.
func newFeedResponse(view *feed.View) FeedResponse {
	return FeedResponse{
		Feed:        feedSection(view),
		Trending:    trendingSection(view),
		Recommended: recommendedSection(view),
		Engagements: view.Engagements,
		GeneratedAt: view.GeneratedAt,
	}
}

func feedSection(view *feed.View) FeedSection[FeedItem] {
	items := make([]FeedItem, 0, len(view.Feed))
	for i := range view.Feed {
		items = append(items, newFeedItem(&view.Feed[i], view.GeneratedAt))
	}
	return FeedSection[FeedItem]{Items: items, Message: view.FeedMessage, Error: view.FeedErr != nil}
}

func trendingSection(view *feed.View) FeedSection[TrendingItem] {
	items := make([]TrendingItem, 0, len(view.Trending))
	for i := range view.Trending {
		items = append(items, newTrendingItem(&view.Trending[i]))
	}
	return FeedSection[TrendingItem]{Items: items, Message: view.TrendingMessage, Error: view.TrendingErr != nil}
}

func recommendedSection(view *feed.View) FeedSection[RecommendedItem] {
	items := make([]RecommendedItem, 0, len(view.Recommended))
	for i := range view.Recommended {
		items = append(items, newRecommendedItem(&view.Recommended[i]))
	}
	return FeedSection[RecommendedItem]{Items: items, Message: view.RecommendedMessage, Error: view.FeedErr != nil}
}

func newFeedItem(sp *feed.ScoredPost, now time.Time) FeedItem {
	return FeedItem{
		ID:            sp.ID,
		Content:       sp.Content,
		Media:         sp.Media,
		Likes:         sp.Likes,
		Views:         sp.Views,
		CommentsCount: sp.CommentsCount,
		Timestamp:     sp.Timestamp,
		TimeAgo:       timeAgo(sp.Timestamp, now),
		BaseScore:     sp.BaseScore,
		Similarity:    sp.Similarity,
		TotalScore:    sp.TotalScore,
	}
}

func newTrendingItem(sp *feed.ScoredPost) TrendingItem {
	content := sp.Content
	if content == "" {
		content = mediaPlaceholder
	}
	return TrendingItem{
		ID:        sp.ID,
		Snippet:   truncateRunes(content, trendingSnippetLength),
		Likes:     sp.Likes,
		BaseScore: sp.BaseScore,
	}
}

func newRecommendedItem(sp *feed.ScoredPost) RecommendedItem {
	return RecommendedItem{
		ID:           sp.ID,
		Snippet:      truncateRunes(sp.Content, recommendedSnippetLength),
		MatchPercent: int(math.Round(sp.Similarity * 100)),
		Similarity:   sp.Similarity,
	}
}

// PostResponse is the payload of POST /api/v1/posts.
type PostResponse struct {
	Post    feed.Post `json:"post"`
	TimeAgo string    `json:"time_ago"`
}

// timeAgo renders a millisecond timestamp relative to now. Timestamps in
// the future count as "just now".
func timeAgo(timestampMS int64, now time.Time) string {
	if timestampMS == 0 {
		return "recently"
	}
	seconds := (now.UnixMilli() - timestampMS) / 1000
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// truncateRunes keeps at most n characters of s.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
