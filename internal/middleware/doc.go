// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package middleware provides the chi middleware used by the Farmfeed API.

Key Components:

  - RequestID: accepts or assigns an X-Request-ID and stores it in the
    logging context
  - PrometheusMetrics: request count, latency and in-flight gauges labelled
    by chi route pattern
  - AccessLog: one structured zerolog line per request, promoted to a
    warning when the request exceeds the slow threshold

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)

Route patterns rather than raw paths label the metrics, so
/api/v1/posts/{postID}/like produces one series for all posts.
*/
package middleware
