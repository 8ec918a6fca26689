// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/logging"
	"github.com/tomtom215/farmfeed/internal/metrics"
)

// BreakerConfig controls when the post store circuit opens and recovers.
type BreakerConfig struct {
	// Name labels the breaker in logs and metrics.
	Name string

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32

	// Interval resets the failure counts while closed.
	Interval time.Duration

	// Timeout is how long the circuit stays open before a trial.
	Timeout time.Duration

	// MinRequests is the minimum sample before the failure ratio is checked.
	MinRequests uint32

	// FailureRatio opens the circuit once reached.
	FailureRatio float64
}

// DefaultBreakerConfig returns production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "post-store",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreakerStore wraps a feed.PostStore with circuit breaker protection.
//
// Only infrastructure failures count against the circuit. Lookups of a
// missing post and cancelled requests are passed through as successes.
// While the circuit is open every call fails with feed.ErrStoreUnavailable.
type CircuitBreakerStore struct {
	next feed.PostStore
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewCircuitBreakerStore wraps next.
func NewCircuitBreakerStore(next feed.PostStore, cfg BreakerConfig) *CircuitBreakerStore {
	name := cfg.Name
	if name == "" {
		name = "post-store"
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio

			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || isIgnored(err)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerStore{next: next, cb: cb, name: name}
}

// isIgnored reports errors that say nothing about store health. The breaker
// counts them as successes.
func isIgnored(err error) bool {
	return errors.Is(err, feed.ErrPostNotFound) || errors.Is(err, context.Canceled)
}

// State returns the current breaker state.
func (s *CircuitBreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *CircuitBreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := s.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", s.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", feed.ErrStoreUnavailable, err)
		}

		outcome := "failure"
		if isIgnored(err) {
			outcome = "ignored"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, outcome).Inc()
		counts := s.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(0)

	return result, nil
}

// FetchRecent implements feed.PostStore.
func (s *CircuitBreakerStore) FetchRecent(ctx context.Context, limit int, orderByRecency bool) ([]feed.Post, error) {
	result, err := s.execute(func() (any, error) {
		return s.next.FetchRecent(ctx, limit, orderByRecency)
	})
	if err != nil {
		return nil, err
	}
	posts, _ := result.([]feed.Post)
	return posts, nil
}

// IncrementLikes implements feed.PostStore.
func (s *CircuitBreakerStore) IncrementLikes(ctx context.Context, postID string) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.next.IncrementLikes(ctx, postID)
	})
	return err
}

// GetPost implements feed.PostStore.
func (s *CircuitBreakerStore) GetPost(ctx context.Context, postID string) (feed.Post, error) {
	return castPost(s.execute(func() (any, error) {
		return s.next.GetPost(ctx, postID)
	}))
}

// CreatePost implements feed.PostStore.
func (s *CircuitBreakerStore) CreatePost(ctx context.Context, post feed.Post) (feed.Post, error) {
	return castPost(s.execute(func() (any, error) {
		return s.next.CreatePost(ctx, post)
	}))
}

func castPost(result any, err error) (feed.Post, error) {
	if err != nil {
		return feed.Post{}, err
	}
	post, ok := result.(feed.Post)
	if !ok {
		return feed.Post{}, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return post, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
