// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - Ranking cycles (feed, trending, recommended)
  - Reader engagement and session lifecycle
  - Post store queries, errors and circuit breaker state
  - Weather lookups and their cache
  - HTTP request latency and throughput

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8417/metrics

# Available Metrics

Ranking Metrics:
  - feed_ranking_duration_seconds: Time to rank one view (histogram)
    Labels: view
  - feed_posts_ranked_total: Posts scored (counter)
    Labels: view
  - feed_recommendations_returned: Recommendations per cycle (histogram)
  - feed_empty_views_total: Cycles that produced an empty-state view (counter)
    Labels: view, reason

Engagement Metrics:
  - feed_engagements_total: Explicit engagement actions (counter)
    Labels: action
  - feed_active_sessions: Sessions currently holding an interest vector (gauge)

Store Metrics:
  - post_store_query_duration_seconds: Store operation latency (histogram)
    Labels: operation
  - post_store_errors_total: Failed store operations (counter)
    Labels: operation
  - circuit_breaker_*: Breaker state, requests and transitions

Weather Metrics:
  - weather_requests_total: Outbound weather lookups (counter)
    Labels: kind, result

HTTP Metrics:
  - api_requests_total, api_request_duration_seconds, api_active_requests

# Usage

All collectors are registered with the default registry through promauto at
package init. Callers use the Record* helpers rather than the collectors:

	start := time.Now()
	ranked := ranker.RankFeed(posts, tracker)
	metrics.RecordRankingCycle("feed", time.Since(start), len(ranked))
*/
package metrics
