// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/farmfeed/internal/models"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK whenever the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":    true,
			"uptime":   time.Since(h.startTime).Seconds(),
			"sessions": h.sessions.Len(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
