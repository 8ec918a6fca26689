// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

// Package weather fetches current conditions for a farmer's field from the
// OpenWeather API.
//
// Two lookups are supported:
//   - Current: conditions at a latitude/longitude (data/2.5/weather, metric units)
//   - Geocode: coordinates for a city name (geo/1.0/direct, first match only)
//
// CityWeather chains the two and labels the report "City, CC".
//
// Results are held in a TTL cache (internal/cache) keyed by the rounded
// coordinates or the normalized city name, and outbound calls share one
// token bucket limiter (golang.org/x/time/rate) so a burst of readers
// cannot exhaust the API quota.
//
// # Errors
//
//   - ErrNotConfigured: no API key, or the key is still a placeholder
//   - ErrWeatherFetchFailed: the conditions request failed or had no data
//   - ErrGeoLookupFailed: the geocoding request failed
//   - ErrCityNotFound: geocoding returned no match (wraps ErrGeoLookupFailed)
//
// Message maps these to the short texts shown to readers.
package weather
