// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/farmfeed/internal/auth"
	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/models"
	"github.com/tomtom215/farmfeed/internal/session"
	"github.com/tomtom215/farmfeed/internal/weather"
)

// Handler serves the API endpoints.
type Handler struct {
	engine     *feed.Engine
	sessions   *session.Manager
	jwtManager *auth.JWTManager
	weather    *weather.Client
	startTime  time.Time
}

// NewHandler creates a handler. The weather client may be unconfigured, in
// which case the weather endpoint reports NOT_CONFIGURED.
//
// Example:
//
//	handler := api.NewHandler(engine, sessions, jwtManager, weatherClient)
//	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), chiMw)
//	http.ListenAndServe(":8080", router.Setup())
func NewHandler(engine *feed.Engine, sessions *session.Manager, jwtManager *auth.JWTManager, weatherClient *weather.Client) *Handler {
	return &Handler{
		engine:     engine,
		sessions:   sessions,
		jwtManager: jwtManager,
		weather:    weatherClient,
		startTime:  time.Now(),
	}
}

// currentSession resolves the session named by the request's token. On
// failure it writes the error response and returns nil.
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) *session.Session {
	claims := auth.GetClaims(r.Context())
	if claims == nil {
		respondError(w, r, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Authentication required", nil)
		return nil
	}

	sess, err := h.sessions.Get(claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			respondError(w, r, http.StatusUnauthorized, models.ErrCodeSessionExpired,
				"Session expired. Start a new session.", err)
			return nil
		}
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Session lookup failed", err)
		return nil
	}
	return sess
}

// storeErrorStatus maps post store failures to an HTTP status.
func storeErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, feed.ErrPostNotFound):
		return http.StatusNotFound, models.ErrCodeNotFound, "Post not found"
	case errors.Is(err, feed.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, models.ErrCodeStore, "Post store unavailable. Try again shortly."
	default:
		return http.StatusInternalServerError, models.ErrCodeStore, "Post store error"
	}
}
