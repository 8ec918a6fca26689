// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunables of the ranking pipeline.
// DefaultConfig reproduces the production formulas exactly.
type Config struct {
	// Score contains the base and total score weights.
	Score ScoreConfig `json:"score"`

	// Interest contains the interest update rule.
	Interest InterestConfig `json:"interest"`

	// Recommend contains the recommendation filter.
	Recommend RecommendConfig `json:"recommend"`

	// Limits contains batch sizes for each view.
	Limits LimitsConfig `json:"limits"`
}

// ScoreConfig defines the base score and the total score blend.
type ScoreConfig struct {
	// LikeWeight is the points per like.
	// Default: 3.
	LikeWeight float64 `json:"like_weight"`

	// CommentWeight is the points per comment.
	// Default: 5.
	CommentWeight float64 `json:"comment_weight"`

	// ViewWeight is the points per view.
	// Default: 1.
	ViewWeight float64 `json:"view_weight"`

	// RecencyBonus is the bonus of a post published right now.
	// Default: 10.
	RecencyBonus float64 `json:"recency_bonus"`

	// RecencyWindow is the age at which the recency bonus reaches zero.
	// Default: 48h.
	RecencyWindow time.Duration `json:"recency_window"`

	// BaseWeight is the share of the base score in the total score.
	// Default: 0.7.
	BaseWeight float64 `json:"base_weight"`

	// SimilarityScale rescales similarity (at most 1) to base score magnitudes.
	// Default: 10.
	SimilarityScale float64 `json:"similarity_scale"`

	// SimilarityWeight is the share of the scaled similarity in the total score.
	// Default: 0.3.
	SimilarityWeight float64 `json:"similarity_weight"`
}

// InterestConfig defines the interest update rule
// interest[i] = interest[i]*Decay + embedding[i]*Gain.
type InterestConfig struct {
	// Decay is the retained share of the previous interest.
	// Default: 0.9.
	Decay float64 `json:"decay"`

	// Gain is the weight of a newly engaged post.
	// Default: 0.3.
	Gain float64 `json:"gain"`
}

// RecommendConfig defines the recommendation filter.
type RecommendConfig struct {
	// MinSimilarity is the strict lower bound a post must exceed.
	// Default: 0.05.
	MinSimilarity float64 `json:"min_similarity"`

	// MaxItems is the number of recommendations returned.
	// Default: 5.
	MaxItems int `json:"max_items"`
}

// LimitsConfig defines how many posts each cycle fetches and shows.
type LimitsConfig struct {
	// FeedLimit is the feed batch size, newest first.
	// Default: 50.
	FeedLimit int `json:"feed_limit"`

	// TrendingLimit is the trending sample size, in store order.
	// Default: 100.
	TrendingLimit int `json:"trending_limit"`

	// TrendingTopN is the number of trending posts shown.
	// Default: 5.
	TrendingTopN int `json:"trending_top_n"`
}

// DefaultConfig returns the production configuration.
func DefaultConfig() *Config {
	return &Config{
		Score: ScoreConfig{
			LikeWeight:       3,
			CommentWeight:    5,
			ViewWeight:       1,
			RecencyBonus:     10,
			RecencyWindow:    48 * time.Hour,
			BaseWeight:       0.7,
			SimilarityScale:  10,
			SimilarityWeight: 0.3,
		},
		Interest: InterestConfig{
			Decay: 0.9,
			Gain:  0.3,
		},
		Recommend: RecommendConfig{
			MinSimilarity: 0.05,
			MaxItems:      5,
		},
		Limits: LimitsConfig{
			FeedLimit:     50,
			TrendingLimit: 100,
			TrendingTopN:  5,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	var errs []error

	s := c.Score
	if s.LikeWeight < 0 || s.CommentWeight < 0 || s.ViewWeight < 0 {
		errs = append(errs, fmt.Errorf("score engagement weights must be non-negative"))
	}
	if s.RecencyBonus < 0 {
		errs = append(errs, fmt.Errorf("score.recency_bonus must be non-negative, got %f", s.RecencyBonus))
	}
	if s.RecencyWindow <= 0 {
		errs = append(errs, fmt.Errorf("score.recency_window must be positive, got %v", s.RecencyWindow))
	}
	if s.BaseWeight < 0 || s.SimilarityWeight < 0 || s.SimilarityScale < 0 {
		errs = append(errs, fmt.Errorf("score blend weights must be non-negative"))
	}

	if c.Interest.Decay < 0 || c.Interest.Decay >= 1 {
		errs = append(errs, fmt.Errorf("interest.decay must be in [0, 1), got %f", c.Interest.Decay))
	}
	if c.Interest.Gain < 0 {
		errs = append(errs, fmt.Errorf("interest.gain must be non-negative, got %f", c.Interest.Gain))
	}

	if c.Recommend.MinSimilarity < 0 || c.Recommend.MinSimilarity > 1 {
		errs = append(errs, fmt.Errorf("recommend.min_similarity must be in [0, 1], got %f", c.Recommend.MinSimilarity))
	}
	if c.Recommend.MaxItems < 0 {
		errs = append(errs, fmt.Errorf("recommend.max_items must be non-negative, got %d", c.Recommend.MaxItems))
	}

	if c.Limits.FeedLimit < 1 {
		errs = append(errs, fmt.Errorf("limits.feed_limit must be positive, got %d", c.Limits.FeedLimit))
	}
	if c.Limits.TrendingLimit < 1 {
		errs = append(errs, fmt.Errorf("limits.trending_limit must be positive, got %d", c.Limits.TrendingLimit))
	}
	if c.Limits.TrendingTopN < 0 {
		errs = append(errs, fmt.Errorf("limits.trending_top_n must be non-negative, got %d", c.Limits.TrendingTopN))
	}

	return errors.Join(errs...)
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only.
	clone := *c
	return &clone
}
