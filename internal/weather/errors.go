// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when no usable API key is configured.
	ErrNotConfigured = errors.New("weather API key not configured")

	// ErrWeatherFetchFailed is returned when current conditions cannot be loaded.
	ErrWeatherFetchFailed = errors.New("weather fetch failed")

	// ErrGeoLookupFailed is returned when a city cannot be geocoded.
	ErrGeoLookupFailed = errors.New("geocoding failed")

	// ErrCityNotFound is returned when geocoding has no match.
	ErrCityNotFound = fmt.Errorf("city not found: %w", ErrGeoLookupFailed)
)

// Reader-facing messages.
const (
	MessageNotConfigured = "Weather API key not configured."
	MessageFetchFailed   = "Weather fetch failed."
	MessageCityNotFound  = "City not found."
	MessageGenericError  = "Weather error."
)

// Message returns the short text shown to readers for a weather error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return MessageNotConfigured
	case errors.Is(err, ErrCityNotFound):
		return MessageCityNotFound
	case errors.Is(err, ErrWeatherFetchFailed):
		return MessageFetchFailed
	default:
		return MessageGenericError
	}
}
