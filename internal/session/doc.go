// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

// Package session keeps the in-memory state of anonymous Farmfeed readers.
//
// Each session owns one feed.InterestTracker. Interest vectors are never
// persisted: they start at zero when a session starts and are dropped when
// it ends, goes idle for longer than sessions.idle_timeout, or is evicted
// to make room under sessions.max_sessions.
//
// Janitor is a suture service that sweeps idle sessions on a fixed
// interval.
package session
