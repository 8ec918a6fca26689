// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/feed"
)

// buildFeedConfig maps the feed section of the configuration onto the
// engine configuration.
func buildFeedConfig(cfg *config.FeedConfig) *feed.Config {
	return &feed.Config{
		Score: feed.ScoreConfig{
			LikeWeight:       cfg.LikeWeight,
			CommentWeight:    cfg.CommentWeight,
			ViewWeight:       cfg.ViewWeight,
			RecencyBonus:     cfg.RecencyBonus,
			RecencyWindow:    cfg.RecencyWindow,
			BaseWeight:       cfg.BaseWeight,
			SimilarityScale:  cfg.SimilarityScale,
			SimilarityWeight: cfg.SimilarityWeight,
		},
		Interest: feed.InterestConfig{
			Decay: cfg.InterestDecay,
			Gain:  cfg.InterestGain,
		},
		Recommend: feed.RecommendConfig{
			MinSimilarity: cfg.MinSimilarity,
			MaxItems:      cfg.MaxRecommendations,
		},
		Limits: feed.LimitsConfig{
			FeedLimit:     cfg.FeedLimit,
			TrendingLimit: cfg.TrendingLimit,
			TrendingTopN:  cfg.TrendingTopN,
		},
	}
}

// buildVocabulary returns the configured vocabulary, or the built-in
// agricultural terms when none is configured.
func buildVocabulary(terms []string) (*feed.Vocabulary, error) {
	if len(terms) == 0 {
		return feed.DefaultVocabulary(), nil
	}
	vocab, err := feed.NewVocabulary(terms)
	if err != nil {
		return nil, fmt.Errorf("feed vocabulary: %w", err)
	}
	return vocab, nil
}

// initFeedEngine builds the ranking engine over the given store.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initFeedEngine(cfg *config.Config, postStore feed.PostStore, logger zerolog.Logger) (*feed.Engine, error) {
	vocab, err := buildVocabulary(cfg.Feed.Vocabulary)
	if err != nil {
		return nil, err
	}

	engine, err := feed.NewEngine(buildFeedConfig(&cfg.Feed), vocab, postStore, feed.SystemClock{}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed engine: %w", err)
	}

	engineCfg := engine.Config()
	logger.Info().
		Int("vocabulary_terms", vocab.Len()).
		Float64("interest_decay", engineCfg.Interest.Decay).
		Float64("interest_gain", engineCfg.Interest.Gain).
		Float64("min_similarity", engineCfg.Recommend.MinSimilarity).
		Int("feed_limit", engineCfg.Limits.FeedLimit).
		Msg("feed engine initialized")

	return engine, nil
}
