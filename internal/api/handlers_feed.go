// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/farmfeed/internal/logging"
	"github.com/tomtom215/farmfeed/internal/models"
)

const maxPostIDLength = 128

// Feed runs one ranking cycle for the caller's session and returns the
// feed, trending and recommended lists.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sess := h.currentSession(w, r)
	if sess == nil {
		return
	}

	view := h.engine.Refresh(r.Context(), sess.Tracker)
	respondSuccess(w, http.StatusOK, newFeedResponse(&view), start)
}

// Trending returns only the trending list. It does not depend on the
// caller's interests but still requires a session.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sess := h.currentSession(w, r)
	if sess == nil {
		return
	}

	view := h.engine.Refresh(r.Context(), sess.Tracker)
	respondSuccess(w, http.StatusOK, trendingSection(&view), start)
}

// Recommended returns only the recommendations for the caller.
func (h *Handler) Recommended(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sess := h.currentSession(w, r)
	if sess == nil {
		return
	}

	view := h.engine.Refresh(r.Context(), sess.Tracker)
	respondSuccess(w, http.StatusOK, recommendedSection(&view), start)
}

// LikePost folds the post into the caller's interest vector, increments
// its like count and returns the refreshed view.
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	postID := strings.TrimSpace(chi.URLParam(r, "postID"))
	if postID == "" || len(postID) > maxPostIDLength {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Invalid post ID", nil)
		return
	}

	sess := h.currentSession(w, r)
	if sess == nil {
		return
	}

	view, err := h.engine.Like(r.Context(), sess.Tracker, postID)
	if err != nil {
		status, code, msg := storeErrorStatus(err)
		respondError(w, r, status, code, msg, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("post_id", sanitizeLogValue(postID)).
		Int("engagements", view.Engagements).
		Msg("post liked")

	respondSuccess(w, http.StatusOK, newFeedResponse(&view), start)
}
