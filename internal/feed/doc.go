// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

// Package feed implements the scoring, embedding and ranking pipeline behind
// the Farmfeed home screen.
//
// # Architecture
//
// Every ranking cycle produces three derived views over recently published posts:
//
//   - Feed: posts ordered by a blend of engagement, recency and personal interest
//   - Trending: posts ordered by engagement and recency alone
//   - Recommended: the feed posts that best match the reader's interests
//
// Personal interest is modelled as a bag-of-words vector over a small, fixed
// agricultural vocabulary. Each time a reader likes a post, the post's embedding
// is folded into the reader's InterestTracker with an exponential decay, so
// recent engagement dominates while older engagement still counts.
//
// # Scoring
//
//	base       = likes*3 + comments*5 + views + recency
//	recency    = clamp((48h - age) / 48h, 0, 1) * 10
//	similarity = cosine(embed(content), interest)
//	total      = base*0.7 + similarity*10*0.3
//
// All weights live in Config; DefaultConfig reproduces the values above.
//
// # Collaborators
//
// Posts are read from a PostStore and the current time comes from a Clock. The
// Engine catches store failures and turns them into empty-state views, so the
// ranking functions themselves never fail.
//
// # Usage
//
//	vocab := feed.DefaultVocabulary()
//	engine, err := feed.NewEngine(feed.DefaultConfig(), vocab, store, feed.SystemClock{}, logger)
//	tracker := feed.NewInterestTracker(vocab, cfg.Interest)
//
//	view := engine.Refresh(ctx, tracker)
//	view, err = engine.Like(ctx, tracker, postID)
//
// # Thread Safety
//
// Ranker and Vocabulary are immutable after construction. InterestTracker
// guards its vector with a mutex and hands out copies, so one ranking cycle
// always sees a single consistent snapshot even while likes arrive.
package feed
