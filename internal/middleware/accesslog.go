// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/farmfeed/internal/logging"
)

// AccessLog logs every request at debug level and requests slower than
// slowThreshold at warn level. A non-positive threshold disables the
// slow-request warning.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			msg := "request completed"
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
				msg = "request failed"
			case slowThreshold > 0 && duration > slowThreshold:
				event = logger.Warn().Dur("threshold", slowThreshold)
				msg = "slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int("bytes", wrapper.bytes).
				Dur("duration", duration).
				Msg(msg)
		})
	}
}
