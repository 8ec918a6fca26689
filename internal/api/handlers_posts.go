// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/models"
	"github.com/tomtom215/farmfeed/internal/validation"
)

// CreatePost publishes a new post. The store assigns the ID and the
// server clock sets the timestamp.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.currentSession(w, r) == nil {
		return
	}

	var req CreatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Invalid request body", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	post, err := h.engine.Publish(r.Context(), req.toPost())
	if err != nil {
		if errors.Is(err, feed.ErrEmptyPost) {
			respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Post needs content or media", err)
			return
		}
		status, code, msg := storeErrorStatus(err)
		respondError(w, r, status, code, msg, err)
		return
	}

	respondSuccess(w, http.StatusCreated, PostResponse{
		Post:    post,
		TimeAgo: timeAgo(post.Timestamp, time.UnixMilli(post.Timestamp)),
	}, start)
}
