// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package store provides post store implementations that do not need a database,
and the circuit breaker that guards every post store in production.

MemoryStore keeps posts in process memory in insertion order. It backs the
"memory" database driver and the tests of packages that need a PostStore.

CircuitBreakerStore wraps any feed.PostStore with sony/gobreaker. When the
underlying store keeps failing the breaker opens and calls fail fast with
feed.ErrStoreUnavailable, which the feed engine turns into empty-state views
instead of waiting on a dead backend for every ranking cycle.

	base, _ := database.New(&cfg.Database)
	posts := store.NewCircuitBreakerStore(base, store.DefaultBreakerConfig())
	engine, _ := feed.NewEngine(&feedCfg, vocab, posts, nil, logger)
*/
package store
