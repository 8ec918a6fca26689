// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package cache

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// newTestCache returns a cache without a sweeper and a controllable clock.
func newTestCache(ttl time.Duration) (*Cache[string], *time.Time) {
	c := New[string](ttl, 0)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}

	c.Set("pune", "Clear sky")
	got, ok := c.Get("pune")
	if !ok || got != "Clear sky" {
		t.Errorf("Get(pune) = %q, %v", got, ok)
	}

	c.Set("pune", "Light rain")
	if got, _ := c.Get("pune"); got != "Light rain" {
		t.Errorf("overwrite: Get(pune) = %q", got)
	}
}

func TestCacheExpiration(t *testing.T) {
	c, now := newTestCache(10 * time.Minute)
	c.Set("k", "v")

	*now = now.Add(9 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired too early")
	}

	*now = now.Add(time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should expire exactly at its TTL")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, Len() = %d", c.Len())
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Evictions != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, 1 eviction", stats)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c, now := newTestCache(time.Hour)
	c.SetWithTTL("short", "v", time.Second)
	c.Set("long", "v")

	*now = now.Add(2 * time.Second)
	if _, ok := c.Get("short"); ok {
		t.Error("custom TTL not applied")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("default TTL entry lost")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")

	c.Delete("a")
	c.Delete("absent")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}

	stats := c.GetStats()
	if stats.Evictions != 3 {
		t.Errorf("Evictions = %d, want 3", stats.Evictions)
	}
	if stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0", stats.TotalKeys)
	}
}

func TestCacheCleanup(t *testing.T) {
	c, now := newTestCache(time.Minute)
	c.Set("old", "v")
	*now = now.Add(30 * time.Second)
	c.Set("new", "v")

	*now = now.Add(45 * time.Second)
	c.cleanup()

	if c.Len() != 1 {
		t.Errorf("Len() after cleanup = %d, want 1", c.Len())
	}
	stats := c.GetStats()
	if !stats.LastCleanup.Equal(*now) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, *now)
	}
}

func TestCacheCleanupLoopAndStop(t *testing.T) {
	c := New[int](time.Millisecond, 5*time.Millisecond)
	defer c.Stop()

	c.Set("k", 1)

	deadline := time.Now().Add(time.Second)
	for c.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if c.Len() != 0 {
		t.Error("background cleanup did not remove the expired entry")
	}

	c.Stop()
	c.Stop()
}

func TestCacheHitRate(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	if c.HitRate() != 0 {
		t.Errorf("HitRate() with no operations = %v", c.HitRate())
	}

	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("k")
	c.Get("miss")

	if got := c.HitRate(); got != 75 {
		t.Errorf("HitRate() = %v, want 75", got)
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := New[int](time.Minute, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (id+j)%20)
				c.Set(key, j)
				c.Get(key)
				if j%10 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 20 {
		t.Errorf("Len() = %d, want at most 20", c.Len())
	}
}

func TestGenerateKey(t *testing.T) {
	type coords struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}

	a := GenerateKey("weather", coords{18.52, 73.86})
	b := GenerateKey("weather", coords{18.52, 73.86})
	c := GenerateKey("weather", coords{28.61, 77.21})
	d := GenerateKey("geo", coords{18.52, 73.86})

	if a != b {
		t.Error("identical params produced different keys")
	}
	if a == c || a == d {
		t.Error("different params or prefixes produced the same key")
	}
	if !strings.HasPrefix(a, "weather:") || len(a) != len("weather:")+32 {
		t.Errorf("unexpected key format %q", a)
	}

	if got := GenerateKey("bad", make(chan int)); !strings.HasPrefix(got, "bad:") {
		t.Errorf("fallback key = %q", got)
	}
}
