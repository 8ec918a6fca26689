// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestJanitor_Sweep(t *testing.T) {
	m, now := newTestManager(time.Minute, 0)
	m.Start()
	m.Start()

	j := NewJanitor(m, time.Hour, zerolog.New(io.Discard))

	if removed := j.Sweep(); removed != 0 {
		t.Errorf("Sweep() removed %d fresh sessions", removed)
	}

	*now = now.Add(2 * time.Minute)
	if removed := j.Sweep(); removed != 2 {
		t.Errorf("Sweep() removed %d, want 2", removed)
	}
}

func TestJanitor_ServeStopsOnCancel(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)
	j := NewJanitor(m, 10*time.Millisecond, zerolog.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Serve(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

func TestJanitor_DefaultsAndName(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)
	j := NewJanitor(m, 0, zerolog.New(io.Discard))

	if j.interval != defaultSweepInterval {
		t.Errorf("interval = %v, want %v", j.interval, defaultSweepInterval)
	}
	if j.String() != "session-janitor" {
		t.Errorf("String() = %q", j.String())
	}
}
