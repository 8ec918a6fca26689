// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/farmfeed/internal/auth"
	"github.com/tomtom215/farmfeed/internal/middleware"
	"github.com/tomtom215/farmfeed/internal/models"
)

// slowRequestThreshold marks requests logged at warn level.
const slowRequestThreshold = 500 * time.Millisecond

// Router wires handlers to routes.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMw uses the default middleware config.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: chiMw,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(slowRequestThreshold))
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom(RateLimitHealth))
		r.Get("/live", router.handler.HealthLive)
	})

	r.Route("/api/v1/session", func(r chi.Router) {
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitSession)).Post("/", router.handler.StartSession)
		r.With(router.chiMiddleware.RateLimit(), router.auth.Authenticate).Delete("/", router.handler.EndSession)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.auth.Authenticate)

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", router.handler.Feed)
			r.Get("/trending", router.handler.Trending)
			r.Get("/recommended", router.handler.Recommended)
		})

		r.With(router.chiMiddleware.RateLimitCustom(RateLimitWrite)).Post("/posts", router.handler.CreatePost)
		r.With(router.chiMiddleware.RateLimitCustom(RateLimitEngage)).Post("/posts/{postID}/like", router.handler.LikePost)

		r.With(router.chiMiddleware.RateLimitCustom(RateLimitWeather)).Get("/weather", router.handler.Weather)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
