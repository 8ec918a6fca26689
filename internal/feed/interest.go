// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import "sync"

// InterestTracker holds one reader's inferred interests as a decayed sum of
// the embeddings of posts they engaged with.
//
// A tracker belongs to exactly one session. It starts at zero, is only
// updated by explicit engagement, and is discarded when the session ends.
// It is safe for concurrent use.
type InterestTracker struct {
	vocab *Vocabulary
	decay float64
	gain  float64

	mu          sync.RWMutex
	interest    Vector
	engagements int
}

// NewInterestTracker creates a zeroed tracker over vocab.
func NewInterestTracker(vocab *Vocabulary, cfg InterestConfig) *InterestTracker {
	return &InterestTracker{
		vocab:    vocab,
		decay:    cfg.Decay,
		gain:     cfg.Gain,
		interest: vocab.Zero(),
	}
}

// Update folds the post's content embedding into the interest vector:
//
//	interest[i] = interest[i]*decay + embedding[i]*gain
//
// The weights do not sum to one. Repeating the same post drives each
// dimension towards embedding[i]*gain/(1-decay) rather than embedding[i].
func (t *InterestTracker) Update(post Post) {
	t.UpdateVector(t.vocab.Embed(post.Content))
}

// UpdateVector applies the update rule with a precomputed embedding.
func (t *InterestTracker) UpdateVector(embedding Vector) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.interest {
		var e float64
		if i < len(embedding) {
			e = embedding[i]
		}
		t.interest[i] = t.interest[i]*t.decay + e*t.gain
	}
	t.engagements++
}

// Snapshot returns a copy of the current interest vector.
func (t *InterestTracker) Snapshot() Vector {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(Vector, len(t.interest))
	copy(out, t.interest)
	return out
}

// Engagements returns how many updates have been applied since the last reset.
func (t *InterestTracker) Engagements() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.engagements
}

// Reset zeroes the tracker. Only used when a session is re-initialized.
func (t *InterestTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.interest {
		t.interest[i] = 0
	}
	t.engagements = 0
}
