// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ranking Metrics
	RankingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_ranking_duration_seconds",
			Help:    "Duration of one ranking pass in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05}, // Ranking is in-memory and fast
		},
		[]string{"view"},
	)

	PostsRanked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_posts_ranked_total",
			Help: "Total number of posts scored by the ranking pipeline",
		},
		[]string{"view"},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_recommendations_returned",
			Help:    "Number of recommendations returned per ranking cycle",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
		},
	)

	EmptyViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_empty_views_total",
			Help: "Total number of views rendered in an empty state",
		},
		[]string{"view", "reason"}, // reason: "no_posts", "store_error", "no_match"
	)

	// Engagement Metrics
	Engagements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_engagements_total",
			Help: "Total number of explicit engagement actions",
		},
		[]string{"action"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_active_sessions",
			Help: "Current number of sessions holding an interest vector",
		},
	)

	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "post_store_query_duration_seconds",
			Help:    "Duration of post store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_store_errors_total",
			Help: "Total number of failed post store operations",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "ignored", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Weather Metrics
	WeatherRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_requests_total",
			Help: "Total number of weather and geocoding lookups",
		},
		[]string{"kind", "result"}, // kind: "current", "geocode"; result: "success", "error", "cache_hit"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordRankingCycle records one ranking pass over a batch of posts.
func RecordRankingCycle(view string, duration time.Duration, posts int) {
	RankingDuration.WithLabelValues(view).Observe(duration.Seconds())
	PostsRanked.WithLabelValues(view).Add(float64(posts))
}

// RecordRecommendations records how many recommendations a cycle produced.
func RecordRecommendations(count int) {
	RecommendationsReturned.Observe(float64(count))
}

// RecordEmptyView records a view rendered in its empty state.
func RecordEmptyView(view, reason string) {
	EmptyViews.WithLabelValues(view, reason).Inc()
}

// RecordEngagement records an explicit engagement action such as a like.
func RecordEngagement(action string) {
	Engagements.WithLabelValues(action).Inc()
}

// SetActiveSessions updates the active session gauge.
func SetActiveSessions(count int) {
	ActiveSessions.Set(float64(count))
}

// RecordStoreOperation records a post store operation and its outcome.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(operation).Inc()
	}
}

// RecordWeatherRequest records a weather or geocoding lookup.
func RecordWeatherRequest(kind, result string) {
	WeatherRequests.WithLabelValues(kind, result).Inc()
}

// RecordAPIRequest records an HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
