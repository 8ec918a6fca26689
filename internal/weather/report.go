// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package weather

import "fmt"

// DefaultLabel is used when neither the caller nor the API names the place.
const DefaultLabel = "Your field"

// Report is the current weather at one place.
type Report struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	TempC       int    `json:"temp_c"`
	Humidity    int    `json:"humidity"`
}

// Summary renders the one-line text shown in the weather panel.
func (r Report) Summary() string {
	return fmt.Sprintf("%s: %s, %d°C • Humidity %d%%", r.Label, r.Description, r.TempC, r.Humidity)
}

// Location is a geocoded city.
type Location struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

// currentResponse is the subset of data/2.5/weather we read.
type currentResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// geoResult is one entry of the geo/1.0/direct response array.
type geoResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
