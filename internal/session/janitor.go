// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const defaultSweepInterval = 5 * time.Minute

// Janitor periodically expires idle sessions. It implements suture.Service.
type Janitor struct {
	manager  *Manager
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewJanitor creates a janitor sweeping manager every interval.
func NewJanitor(manager *Manager, interval time.Duration, logger zerolog.Logger) *Janitor {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Janitor{
		manager:  manager,
		interval: interval,
		logger:   logger.With().Str("service", "session-janitor").Logger(),
		name:     "session-janitor",
	}
}

// Serve implements suture.Service.
func (j *Janitor) Serve(ctx context.Context) error {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor starting")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor shutting down")
			return ctx.Err()

		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep expires idle sessions once and returns how many were removed.
func (j *Janitor) Sweep() int {
	removed := j.manager.ExpireIdle(j.manager.now())
	if removed > 0 {
		j.logger.Debug().
			Int("expired", removed).
			Int("active", j.manager.Len()).
			Msg("expired idle sessions")
	}
	return removed
}

// String implements fmt.Stringer for suture logging.
func (j *Janitor) String() string {
	return j.name
}
