// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import "sort"

// Ranker turns batches of posts into the feed, trending and recommended views.
// All methods are pure with respect to their inputs: posts are never mutated
// and the interest vector is only read.
type Ranker struct {
	vocab     *Vocabulary
	scorer    Scorer
	recommend RecommendConfig
	clock     Clock
}

// NewRanker creates a ranker. A nil clock means the system clock.
func NewRanker(cfg *Config, vocab *Vocabulary, clock Clock) *Ranker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Ranker{
		vocab:     vocab,
		scorer:    NewScorer(cfg.Score),
		recommend: cfg.Recommend,
		clock:     clock,
	}
}

// Vocabulary returns the vocabulary used for embeddings.
func (r *Ranker) Vocabulary() *Vocabulary {
	return r.vocab
}

// Scorer returns the underlying scorer.
func (r *Ranker) Scorer() Scorer {
	return r.scorer
}

// RankFeed scores every post against one snapshot of the tracker's interest
// vector and orders them by total score, highest first. Ties keep input order.
// A nil tracker ranks as if the reader had no interests yet.
func (r *Ranker) RankFeed(posts []Post, tracker *InterestTracker) []ScoredPost {
	var interest Vector
	if tracker != nil {
		interest = tracker.Snapshot()
	} else {
		interest = r.vocab.Zero()
	}
	return r.RankFeedWith(posts, interest)
}

// RankFeedWith is RankFeed with an explicit interest vector.
func (r *Ranker) RankFeedWith(posts []Post, interest Vector) []ScoredPost {
	now := r.clock.Now()

	scored := make([]ScoredPost, len(posts))
	for i := range posts {
		embedding := r.vocab.Embed(posts[i].Content)
		base := r.scorer.BaseScore(posts[i], now)
		similarity := CosineSimilarity(embedding, interest)

		scored[i] = ScoredPost{
			Post:       posts[i],
			BaseScore:  base,
			Embedding:  embedding,
			Similarity: similarity,
			TotalScore: r.scorer.TotalScore(base, similarity),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	return scored
}

// RankTrending orders posts by base score alone, highest first. Ties keep
// input order. No personalization is applied and no embedding is computed.
func (r *Ranker) RankTrending(posts []Post) []ScoredPost {
	now := r.clock.Now()

	scored := make([]ScoredPost, len(posts))
	for i := range posts {
		base := r.scorer.BaseScore(posts[i], now)
		scored[i] = ScoredPost{
			Post:      posts[i],
			BaseScore: base,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].BaseScore > scored[j].BaseScore
	})

	return scored
}

// Recommend picks the best interest matches out of an already ranked feed.
// Posts must have similarity strictly above MinSimilarity; survivors are
// ordered by similarity, highest first, and capped at MaxItems. The similarity
// values computed by RankFeed are reused as is.
//
// The result is never nil.
func (r *Ranker) Recommend(scored []ScoredPost) []ScoredPost {
	out := make([]ScoredPost, 0, r.recommend.MaxItems)
	for i := range scored {
		if scored[i].Similarity > r.recommend.MinSimilarity {
			out = append(out, scored[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})

	if len(out) > r.recommend.MaxItems {
		out = out[:r.recommend.MaxItems]
	}
	return out
}
