// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/feed"
)

var testDrivers = []string{DriverDuckDB, DriverSQLite}

// setupTestDB creates an in-memory database for the given driver.
func setupTestDB(t *testing.T, driver string) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Driver:       driver,
		Path:         ":memory:",
		MaxMemory:    "256MB",
		Threads:      1,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { closeQuietly(db) })
	return db
}

// forEachDriver runs fn once per supported driver.
func forEachDriver(t *testing.T, fn func(t *testing.T, db *DB)) {
	t.Helper()
	for _, driver := range testDrivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, setupTestDB(t, driver))
		})
	}
}

func mustInsert(t *testing.T, db *DB, posts ...feed.Post) {
	t.Helper()
	for _, p := range posts {
		if err := db.insertPost(context.Background(), p); err != nil {
			t.Fatalf("insertPost(%s) error = %v", p.ID, err)
		}
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "postgres", Path: ":memory:"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "farmfeed.db")

	db, err := New(&config.DatabaseConfig{Driver: DriverSQLite, Path: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if db.Driver() != DriverSQLite {
		t.Errorf("Driver() = %q, want %q", db.Driver(), DriverSQLite)
	}
}

func TestFetchRecent_Ordering(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		mustInsert(t, db,
			feed.Post{ID: "a", Content: "rice", Timestamp: 1000},
			feed.Post{ID: "b", Content: "wheat", Timestamp: 3000},
			feed.Post{ID: "c", Content: "maize", Timestamp: 2000},
		)
		ctx := context.Background()

		recent, err := db.FetchRecent(ctx, 10, true)
		if err != nil {
			t.Fatalf("FetchRecent() error = %v", err)
		}
		if got := postIDs(recent); !equal(got, []string{"b", "c", "a"}) {
			t.Errorf("recency order = %v, want [b c a]", got)
		}

		natural, err := db.FetchRecent(ctx, 10, false)
		if err != nil {
			t.Fatalf("FetchRecent() error = %v", err)
		}
		if got := postIDs(natural); !equal(got, []string{"a", "b", "c"}) {
			t.Errorf("natural order = %v, want [a b c]", got)
		}
	})
}

func TestFetchRecent_Limit(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		mustInsert(t, db,
			feed.Post{ID: "a", Content: "one", Timestamp: 1},
			feed.Post{ID: "b", Content: "two", Timestamp: 2},
			feed.Post{ID: "c", Content: "three", Timestamp: 3},
		)

		tests := []struct {
			limit int
			want  int
		}{
			{0, 0},
			{-1, 0},
			{2, 2},
			{50, 3},
		}
		for _, tt := range tests {
			posts, err := db.FetchRecent(context.Background(), tt.limit, true)
			if err != nil {
				t.Fatalf("FetchRecent(%d) error = %v", tt.limit, err)
			}
			if len(posts) != tt.want {
				t.Errorf("FetchRecent(%d) returned %d posts, want %d", tt.limit, len(posts), tt.want)
			}
		}
	})
}

func TestCreateAndGetPost(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		ctx := context.Background()

		created, err := db.CreatePost(ctx, feed.Post{
			ID:        "ignored",
			Content:   "Harvest photos",
			Media:     &feed.Media{URL: "https://img/x.jpg", Type: "image"},
			Timestamp: 1700000000000,
		})
		if err != nil {
			t.Fatalf("CreatePost() error = %v", err)
		}
		if created.ID == "" || created.ID == "ignored" {
			t.Fatalf("CreatePost() ID = %q, want fresh UUID", created.ID)
		}

		got, err := db.GetPost(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if got.Content != "Harvest photos" || got.Timestamp != 1700000000000 {
			t.Errorf("GetPost() = %+v", got)
		}
		if got.Media == nil || got.Media.URL != "https://img/x.jpg" || got.Media.Type != "image" {
			t.Errorf("GetPost() media = %+v", got.Media)
		}
	})
}

func TestGetPost_WithoutMedia(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		mustInsert(t, db, feed.Post{ID: "p", Content: "text only", Timestamp: 5})

		got, err := db.GetPost(context.Background(), "p")
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if got.Media != nil {
			t.Errorf("expected nil media, got %+v", got.Media)
		}
	})
}

func TestGetPost_NotFound(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		_, err := db.GetPost(context.Background(), "missing")
		if !errors.Is(err, feed.ErrPostNotFound) {
			t.Errorf("GetPost() error = %v, want ErrPostNotFound", err)
		}
	})
}

func TestIncrementLikes(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		ctx := context.Background()
		mustInsert(t, db, feed.Post{ID: "p", Content: "rice", Likes: 4, Timestamp: 1})

		for i := 0; i < 3; i++ {
			if err := db.IncrementLikes(ctx, "p"); err != nil {
				t.Fatalf("IncrementLikes() error = %v", err)
			}
		}

		got, err := db.GetPost(ctx, "p")
		if err != nil {
			t.Fatalf("GetPost() error = %v", err)
		}
		if got.Likes != 7 {
			t.Errorf("Likes = %d, want 7", got.Likes)
		}

		if err := db.IncrementLikes(ctx, "missing"); !errors.Is(err, feed.ErrPostNotFound) {
			t.Errorf("IncrementLikes(missing) error = %v, want ErrPostNotFound", err)
		}
	})
}

func TestClosedDatabaseIsUnavailable(t *testing.T) {
	db, err := New(&config.DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, err = db.FetchRecent(context.Background(), 10, true)
	if !errors.Is(err, feed.ErrStoreUnavailable) {
		t.Errorf("FetchRecent() on closed db error = %v, want ErrStoreUnavailable", err)
	}
}

func TestSeedMockData(t *testing.T) {
	forEachDriver(t, func(t *testing.T, db *DB) {
		ctx := context.Background()

		n, err := db.SeedMockData(ctx)
		if err != nil {
			t.Fatalf("SeedMockData() error = %v", err)
		}
		if n != len(mockPosts) {
			t.Errorf("SeedMockData() seeded %d, want %d", n, len(mockPosts))
		}

		again, err := db.SeedMockData(ctx)
		if err != nil {
			t.Fatalf("second SeedMockData() error = %v", err)
		}
		if again != 0 {
			t.Errorf("second SeedMockData() seeded %d, want 0", again)
		}

		posts, err := db.FetchRecent(ctx, 50, true)
		if err != nil {
			t.Fatalf("FetchRecent() error = %v", err)
		}
		if len(posts) != len(mockPosts) {
			t.Fatalf("FetchRecent() returned %d posts", len(posts))
		}
		if posts[0].Content != mockPosts[0].content {
			t.Errorf("newest post = %q, want %q", posts[0].Content, mockPosts[0].content)
		}
		for i := 1; i < len(posts); i++ {
			if posts[i].Timestamp > posts[i-1].Timestamp {
				t.Fatalf("posts not in recency order at %d", i)
			}
		}
	})
}

func postIDs(posts []feed.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
