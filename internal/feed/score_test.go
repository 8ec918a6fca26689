// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func hoursAgo(h float64) int64 {
	return testNow.Add(-time.Duration(h * float64(time.Hour))).UnixMilli()
}

func TestScorer_RecencyBonus(t *testing.T) {
	s := NewScorer(DefaultConfig().Score)

	tests := []struct {
		name      string
		timestamp int64
		want      float64
	}{
		{"brand new", testNow.UnixMilli(), 10},
		{"missing timestamp", 0, 10},
		{"half window", hoursAgo(24), 5},
		{"quarter window", hoursAgo(12), 7.5},
		{"at window", hoursAgo(48), 0},
		{"older than window", hoursAgo(100), 0},
		{"future timestamp capped", testNow.Add(time.Hour).UnixMilli(), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.RecencyBonus(tt.timestamp, testNow)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RecencyBonus() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 10 {
				t.Errorf("RecencyBonus() = %v out of [0, 10]", got)
			}
		})
	}
}

func TestScorer_BaseScore(t *testing.T) {
	s := NewScorer(DefaultConfig().Score)

	tests := []struct {
		name string
		post Post
		want float64
	}{
		{
			name: "old post engagement only",
			post: Post{Likes: 2, CommentsCount: 1, Views: 4, Timestamp: hoursAgo(72)},
			want: 2*3 + 1*5 + 4,
		},
		{
			name: "fresh post without engagement",
			post: Post{Timestamp: testNow.UnixMilli()},
			want: 10,
		},
		{
			name: "negative counters count as zero",
			post: Post{Likes: -5, CommentsCount: -1, Views: -10, Timestamp: hoursAgo(72)},
			want: 0,
		},
		{
			name: "mixed",
			post: Post{Likes: 1, Timestamp: hoursAgo(24)},
			want: 3 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.BaseScore(tt.post, testNow)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BaseScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorer_TotalScore(t *testing.T) {
	s := NewScorer(DefaultConfig().Score)

	tests := []struct {
		base, sim, want float64
	}{
		{10, 0, 7},
		{0, 1, 3},
		{10, 0.5, 8.5},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := s.TotalScore(tt.base, tt.sim)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TotalScore(%v, %v) = %v, want %v", tt.base, tt.sim, got, tt.want)
		}
	}
}
