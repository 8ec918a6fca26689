// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/farmfeed/internal/models"
	"github.com/tomtom215/farmfeed/internal/validation"
	"github.com/tomtom215/farmfeed/internal/weather"
)

// WeatherResponse is the payload of GET /api/v1/weather.
type WeatherResponse struct {
	weather.Report
	Summary string `json:"summary"`
}

// Weather reports current conditions for coordinates or a city name.
// Error messages are the ones shown in the weather panel.
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.currentSession(w, r) == nil {
		return
	}

	if h.weather == nil || !h.weather.Enabled() {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeNotConfigured, weather.MessageNotConfigured, nil)
		return
	}

	q := weatherQueryFromRequest(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, verr)
		return
	}

	var (
		report weather.Report
		err    error
	)
	if q.City != "" {
		report, err = h.weather.CityWeather(r.Context(), q.City)
	} else {
		lat, lon, perr := q.coordinates()
		if perr != nil {
			respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Invalid coordinates", perr)
			return
		}
		report, err = h.weather.Current(r.Context(), lat, lon, q.Label)
	}
	if err != nil {
		respondError(w, r, weatherErrorStatus(err), models.ErrCodeWeather, weather.Message(err), err)
		return
	}

	respondSuccess(w, http.StatusOK, WeatherResponse{Report: report, Summary: report.Summary()}, start)
}

func weatherErrorStatus(err error) int {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return http.StatusNotFound
	case errors.Is(err, weather.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
