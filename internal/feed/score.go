// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import "time"

// Scorer computes per-post scores. It holds no mutable state.
type Scorer struct {
	cfg ScoreConfig
}

// NewScorer creates a scorer with the given weights.
func NewScorer(cfg ScoreConfig) Scorer {
	return Scorer{cfg: cfg}
}

// BaseScore returns the engagement and recency score of a post at time now:
//
//	likes*LikeWeight + comments*CommentWeight + views*ViewWeight + recency
//
// The recency bonus decays linearly from RecencyBonus for a post published at
// now to zero at RecencyWindow, and is clamped to [0, RecencyBonus]. A post
// without a timestamp is treated as published at now.
//
//nolint:gocritic // hugeParam: Post passed by value, scoring never mutates it
func (s Scorer) BaseScore(post Post, now time.Time) float64 {
	engagement := float64(nonNegative(post.Likes))*s.cfg.LikeWeight +
		float64(nonNegative(post.CommentsCount))*s.cfg.CommentWeight +
		float64(nonNegative(post.Views))*s.cfg.ViewWeight

	return engagement + s.RecencyBonus(post.Timestamp, now)
}

// RecencyBonus returns the recency part of the base score.
func (s Scorer) RecencyBonus(timestamp int64, now time.Time) float64 {
	nowMS := now.UnixMilli()
	if timestamp == 0 {
		timestamp = nowMS
	}

	ageHours := float64(nowMS-timestamp) / float64(time.Hour/time.Millisecond)
	windowHours := s.cfg.RecencyWindow.Hours()

	freshness := (windowHours - ageHours) / windowHours
	switch {
	case freshness < 0:
		freshness = 0
	case freshness > 1:
		// Timestamps from the future get no more than a brand new post.
		freshness = 1
	}

	return freshness * s.cfg.RecencyBonus
}

// TotalScore blends a base score with a similarity:
//
//	base*BaseWeight + similarity*SimilarityScale*SimilarityWeight
func (s Scorer) TotalScore(base, similarity float64) float64 {
	return base*s.cfg.BaseWeight + similarity*s.cfg.SimilarityScale*s.cfg.SimilarityWeight
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
