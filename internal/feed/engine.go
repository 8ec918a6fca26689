// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/farmfeed/internal/metrics"
)

// Empty-state messages shown in place of a view that has nothing to display.
const (
	MessageNoPosts           = "No posts yet. Be the first to share!"
	MessageLoadError         = "Error loading posts."
	MessageNoTrending        = "No trending posts yet."
	MessageNoRecommendations = "Interact with posts to get recommendations."
)

// View is the output of one ranking cycle.
type View struct {
	Feed        []ScoredPost `json:"feed"`
	Trending    []ScoredPost `json:"trending"`
	Recommended []ScoredPost `json:"recommended"`

	// Non-empty when the matching list is empty.
	FeedMessage        string `json:"feed_message,omitempty"`
	TrendingMessage    string `json:"trending_message,omitempty"`
	RecommendedMessage string `json:"recommended_message,omitempty"`

	FeedErr     error `json:"-"`
	TrendingErr error `json:"-"`

	GeneratedAt time.Time `json:"generated_at"`
	Engagements int       `json:"engagements"`
}

// Engine runs ranking cycles against a post store.
type Engine struct {
	cfg    *Config
	ranker *Ranker
	store  PostStore
	clock  Clock
	logger zerolog.Logger
}

// NewEngine creates a feed engine. A nil clock means the system clock.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, vocab *Vocabulary, store PostStore, clock Clock, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if vocab == nil {
		return nil, fmt.Errorf("%w: nil vocabulary", ErrInvalidVocabulary)
	}
	if store == nil {
		return nil, errors.New("post store is required")
	}
	if clock == nil {
		clock = SystemClock{}
	}

	cfgCopy := cfg.Clone()

	return &Engine{
		cfg:    cfgCopy,
		ranker: NewRanker(cfgCopy, vocab, clock),
		store:  store,
		clock:  clock,
		logger: logger.With().Str("component", "feed").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Ranker returns the ranker used by the engine.
func (e *Engine) Ranker() *Ranker {
	return e.ranker
}

// NewTracker returns a zeroed interest tracker configured for this engine.
func (e *Engine) NewTracker() *InterestTracker {
	return NewInterestTracker(e.ranker.Vocabulary(), e.cfg.Interest)
}

// Refresh runs one ranking cycle for the reader behind tracker.
//
// The feed and trending batches are fetched concurrently and fail
// independently. A failed fetch empties the affected lists and sets an
// error and message on the view; Refresh itself never fails.
func (e *Engine) Refresh(ctx context.Context, tracker *InterestTracker) View {
	start := time.Now()

	view := View{GeneratedAt: e.clock.Now()}
	if tracker != nil {
		view.Engagements = tracker.Engagements()
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		e.refreshFeed(ctx, tracker, &view)
	}()
	go func() {
		defer wg.Done()
		e.refreshTrending(ctx, &view)
	}()
	wg.Wait()

	e.logger.Debug().
		Int("feed", len(view.Feed)).
		Int("trending", len(view.Trending)).
		Int("recommended", len(view.Recommended)).
		Int("engagements", view.Engagements).
		Bool("feed_error", view.FeedErr != nil).
		Bool("trending_error", view.TrendingErr != nil).
		Dur("duration", time.Since(start)).
		Msg("ranking cycle complete")

	return view
}

// refreshFeed fills the feed and recommended parts of the view.
func (e *Engine) refreshFeed(ctx context.Context, tracker *InterestTracker, view *View) {
	posts, err := e.fetch(ctx, "fetch_feed", e.cfg.Limits.FeedLimit, true)
	if err != nil {
		e.logger.Warn().Err(err).Msg("feed fetch failed")
		view.FeedErr = err
		view.Feed = []ScoredPost{}
		view.Recommended = []ScoredPost{}
		view.FeedMessage = MessageLoadError
		view.RecommendedMessage = MessageNoRecommendations
		metrics.RecordEmptyView("feed", "store_error")
		return
	}

	rankStart := time.Now()
	view.Feed = e.ranker.RankFeed(posts, tracker)
	view.Recommended = e.ranker.Recommend(view.Feed)
	metrics.RecordRankingCycle("feed", time.Since(rankStart), len(view.Feed))
	metrics.RecordRecommendations(len(view.Recommended))

	if len(view.Feed) == 0 {
		view.FeedMessage = MessageNoPosts
		metrics.RecordEmptyView("feed", "no_posts")
	}
	if len(view.Recommended) == 0 {
		view.RecommendedMessage = MessageNoRecommendations
		metrics.RecordEmptyView("recommended", "no_match")
	}
}

// refreshTrending fills the trending part of the view.
func (e *Engine) refreshTrending(ctx context.Context, view *View) {
	posts, err := e.fetch(ctx, "fetch_trending", e.cfg.Limits.TrendingLimit, false)
	if err != nil {
		e.logger.Warn().Err(err).Msg("trending fetch failed")
		view.TrendingErr = err
		view.Trending = []ScoredPost{}
		view.TrendingMessage = MessageNoTrending
		metrics.RecordEmptyView("trending", "store_error")
		return
	}

	rankStart := time.Now()
	ranked := e.ranker.RankTrending(posts)
	metrics.RecordRankingCycle("trending", time.Since(rankStart), len(ranked))

	if len(ranked) > e.cfg.Limits.TrendingTopN {
		ranked = ranked[:e.cfg.Limits.TrendingTopN]
	}
	view.Trending = ranked

	if len(view.Trending) == 0 {
		view.TrendingMessage = MessageNoTrending
		metrics.RecordEmptyView("trending", "no_posts")
	}
}

func (e *Engine) fetch(ctx context.Context, op string, limit int, byRecency bool) ([]Post, error) {
	start := time.Now()
	posts, err := e.store.FetchRecent(ctx, limit, byRecency)
	metrics.RecordStoreOperation(op, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Like records an explicit engagement with a stored post and returns the
// refreshed view. The post is loaded by ID; a missing post returns
// ErrPostNotFound and leaves the tracker untouched.
func (e *Engine) Like(ctx context.Context, tracker *InterestTracker, postID string) (View, error) {
	if tracker == nil {
		return View{}, errors.New("interest tracker is required")
	}

	start := time.Now()
	post, err := e.store.GetPost(ctx, postID)
	metrics.RecordStoreOperation("get_post", time.Since(start), err)
	if err != nil {
		return View{}, fmt.Errorf("load post %q: %w", postID, err)
	}

	return e.LikePost(ctx, tracker, post)
}

// LikePost records an engagement with a post the caller already holds, such
// as an entry of a rendered view, and returns the refreshed view.
//
// The reader's interest is updated before the store is touched, so a store
// outage still personalizes the next cycle. Increment failures are logged
// and counted, not returned.
func (e *Engine) LikePost(ctx context.Context, tracker *InterestTracker, post Post) (View, error) {
	if tracker == nil {
		return View{}, errors.New("interest tracker is required")
	}
	if post.ID == "" {
		return View{}, errors.New("post id is required")
	}

	tracker.Update(post)
	metrics.RecordEngagement("like")

	start := time.Now()
	err := e.store.IncrementLikes(ctx, post.ID)
	metrics.RecordStoreOperation("increment_likes", time.Since(start), err)
	if err != nil {
		e.logger.Warn().Err(err).Str("post_id", post.ID).Msg("like increment failed")
	}

	e.logger.Debug().
		Str("post_id", post.ID).
		Int("engagements", tracker.Engagements()).
		Msg("interest updated")

	return e.Refresh(ctx, tracker), nil
}

// Publish stores a new post. Timestamps are assigned by the engine clock and
// engagement counters start at zero.
func (e *Engine) Publish(ctx context.Context, post Post) (Post, error) {
	post.Content = strings.TrimSpace(post.Content)
	if post.Content == "" && !post.HasMedia() {
		return Post{}, ErrEmptyPost
	}

	post.ID = ""
	post.Likes = 0
	post.Views = 0
	post.CommentsCount = 0
	post.Timestamp = e.clock.Now().UnixMilli()

	start := time.Now()
	created, err := e.store.CreatePost(ctx, post)
	metrics.RecordStoreOperation("create_post", time.Since(start), err)
	if err != nil {
		return Post{}, fmt.Errorf("create post: %w", err)
	}

	e.logger.Info().Str("post_id", created.ID).Bool("media", created.HasMedia()).Msg("post published")
	return created, nil
}
