// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

// Package cache provides a small thread-safe in-memory TTL cache.
//
// Farmfeed uses it to hold weather reports and geocoding results so
// repeated lookups for the same field or city within the TTL do not hit the
// OpenWeather API again.
//
// Example:
//
//	reports := cache.New[weather.Report](10*time.Minute, time.Minute)
//	defer reports.Stop()
//
//	key := cache.GenerateKey("weather", coords)
//	if r, ok := reports.Get(key); ok {
//	    return r, nil
//	}
package cache
