// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordRankingCycle verifies posts are counted per view
func TestRecordRankingCycle(t *testing.T) {
	tests := []struct {
		name  string
		view  string
		posts int
	}{
		{name: "feed batch", view: "feed", posts: 50},
		{name: "trending batch", view: "trending", posts: 100},
		{name: "empty batch", view: "recommended", posts: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(PostsRanked.WithLabelValues(tt.view))
			RecordRankingCycle(tt.view, time.Millisecond, tt.posts)
			after := testutil.ToFloat64(PostsRanked.WithLabelValues(tt.view))

			if got := after - before; got != float64(tt.posts) {
				t.Errorf("posts ranked delta = %v, want %d", got, tt.posts)
			}
		})
	}
}

// TestRecordStoreOperation verifies errors are only counted on failure
func TestRecordStoreOperation(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		err       error
		wantDelta float64
	}{
		{name: "successful fetch", operation: "fetch_recent", err: nil, wantDelta: 0},
		{name: "failed fetch", operation: "fetch_recent", err: errors.New("connection refused"), wantDelta: 1},
		{name: "failed like", operation: "increment_likes", err: errors.New("timeout"), wantDelta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(StoreErrors.WithLabelValues(tt.operation))
			RecordStoreOperation(tt.operation, 2*time.Millisecond, tt.err)
			after := testutil.ToFloat64(StoreErrors.WithLabelValues(tt.operation))

			if got := after - before; got != tt.wantDelta {
				t.Errorf("store errors delta = %v, want %v", got, tt.wantDelta)
			}
		})
	}
}

func TestRecordEngagement(t *testing.T) {
	before := testutil.ToFloat64(Engagements.WithLabelValues("like"))
	RecordEngagement("like")
	RecordEngagement("like")
	if got := testutil.ToFloat64(Engagements.WithLabelValues("like")) - before; got != 2 {
		t.Errorf("engagements delta = %v, want 2", got)
	}
}

func TestRecordEmptyView(t *testing.T) {
	before := testutil.ToFloat64(EmptyViews.WithLabelValues("trending", "no_posts"))
	RecordEmptyView("trending", "no_posts")
	if got := testutil.ToFloat64(EmptyViews.WithLabelValues("trending", "no_posts")) - before; got != 1 {
		t.Errorf("empty views delta = %v, want 1", got)
	}
}

func TestSetActiveSessions(t *testing.T) {
	SetActiveSessions(7)
	if got := testutil.ToFloat64(ActiveSessions); got != 7 {
		t.Errorf("active sessions = %v, want 7", got)
	}
	SetActiveSessions(0)
	if got := testutil.ToFloat64(ActiveSessions); got != 0 {
		t.Errorf("active sessions = %v, want 0", got)
	}
}

// TestRecordWeatherRequest tests weather lookup metric recording
func TestRecordWeatherRequest(t *testing.T) {
	tests := []struct {
		kind   string
		result string
	}{
		{"current", "success"},
		{"current", "cache_hit"},
		{"geocode", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"_"+tt.result, func(t *testing.T) {
			before := testutil.ToFloat64(WeatherRequests.WithLabelValues(tt.kind, tt.result))
			RecordWeatherRequest(tt.kind, tt.result)
			if got := testutil.ToFloat64(WeatherRequests.WithLabelValues(tt.kind, tt.result)) - before; got != 1 {
				t.Errorf("weather requests delta = %v, want 1", got)
			}
		})
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{name: "successful feed", method: "GET", endpoint: "/api/v1/feed", statusCode: "200", duration: 25 * time.Millisecond},
		{name: "like missing post", method: "POST", endpoint: "/api/v1/posts/{postID}/like", statusCode: "404", duration: 5 * time.Millisecond},
		{name: "unauthorized", method: "GET", endpoint: "/api/v1/feed/recommended", statusCode: "401", duration: time.Millisecond},
		{name: "rate limited", method: "GET", endpoint: "/api/v1/weather", statusCode: "429", duration: time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("api requests delta = %v, want 1", after-before)
			}
		})
	}
}

// TestTrackActiveRequest_Concurrent verifies the gauge returns to its start value
func TestTrackActiveRequest_Concurrent(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests = %v, want %v", got, start)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordRankingCycle("feed", time.Millisecond, 1)
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
