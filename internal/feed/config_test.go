// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package feed

import (
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative like weight", func(c *Config) { c.Score.LikeWeight = -1 }},
		{"negative recency bonus", func(c *Config) { c.Score.RecencyBonus = -1 }},
		{"zero recency window", func(c *Config) { c.Score.RecencyWindow = 0 }},
		{"negative base weight", func(c *Config) { c.Score.BaseWeight = -0.1 }},
		{"decay of one", func(c *Config) { c.Interest.Decay = 1 }},
		{"negative decay", func(c *Config) { c.Interest.Decay = -0.1 }},
		{"negative gain", func(c *Config) { c.Interest.Gain = -1 }},
		{"min similarity above one", func(c *Config) { c.Recommend.MinSimilarity = 1.5 }},
		{"negative max items", func(c *Config) { c.Recommend.MaxItems = -1 }},
		{"zero feed limit", func(c *Config) { c.Limits.FeedLimit = 0 }},
		{"zero trending limit", func(c *Config) { c.Limits.TrendingLimit = 0 }},
		{"negative trending top n", func(c *Config) { c.Limits.TrendingTopN = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Score.RecencyWindow = time.Hour
	clone.Limits.FeedLimit = 1

	if cfg.Score.RecencyWindow != 48*time.Hour {
		t.Error("Clone shares score config")
	}
	if cfg.Limits.FeedLimit != 50 {
		t.Error("Clone shares limits config")
	}
}
