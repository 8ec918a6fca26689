// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/farmfeed/internal/auth"
	"github.com/tomtom215/farmfeed/internal/logging"
	"github.com/tomtom215/farmfeed/internal/models"
)

// StartSession signs the caller in anonymously: it creates a session with
// a zero interest vector and returns a token naming it. The token is also
// set as an HttpOnly cookie for browser clients.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess := h.sessions.Start()
	token, expiresAt, err := h.jwtManager.GenerateToken(sess.ID)
	if err != nil {
		h.sessions.End(sess.ID)
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to issue session token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	logging.Ctx(logging.ContextWithSessionID(r.Context(), sess.ID)).Info().Msg("session started")

	respondSuccess(w, http.StatusCreated, models.SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, start)
}

// EndSession discards the caller's session and its interest vector.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetClaims(r.Context())
	if claims == nil {
		respondError(w, r, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Authentication required", nil)
		return
	}

	ended := h.sessions.End(claims.SessionID)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	respondSuccess(w, http.StatusOK, map[string]bool{"ended": ended}, time.Now())
}
