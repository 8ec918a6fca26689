// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/farmfeed/internal/feed"
)

// CreatePostRequest is the body of POST /api/v1/posts.
// A post needs content, media, or both.
type CreatePostRequest struct {
	Content   string `json:"content" validate:"required_without=MediaURL,max=2000"`
	MediaURL  string `json:"media_url" validate:"omitempty,http_url,max=2048"`
	MediaType string `json:"media_type" validate:"required_with=MediaURL,excluded_without=MediaURL,omitempty,oneof=image video"`
}

// toPost converts the request into a post for the engine.
func (req *CreatePostRequest) toPost() feed.Post {
	post := feed.Post{Content: req.Content}
	if req.MediaURL != "" {
		post.Media = &feed.Media{URL: req.MediaURL, Type: req.MediaType}
	}
	return post
}

// WeatherQuery holds the query parameters of GET /api/v1/weather: either
// coordinates (with an optional display label) or a city name.
type WeatherQuery struct {
	Lat   string `json:"lat" validate:"required_without=City,required_with=Lon,omitempty,latitude"`
	Lon   string `json:"lon" validate:"required_with=Lat,omitempty,longitude"`
	City  string `json:"city" validate:"required_without_all=Lat Lon,excluded_with=Lat,omitempty,notblank,max=100"`
	Label string `json:"label" validate:"omitempty,max=100"`
}

// weatherQueryFromRequest reads the weather query parameters.
func weatherQueryFromRequest(r *http.Request) WeatherQuery {
	q := r.URL.Query()
	return WeatherQuery{
		Lat:   strings.TrimSpace(q.Get("lat")),
		Lon:   strings.TrimSpace(q.Get("lon")),
		City:  q.Get("city"),
		Label: strings.TrimSpace(q.Get("label")),
	}
}

// coordinates parses Lat and Lon. Only valid after validation passed.
func (q *WeatherQuery) coordinates() (lat, lon float64, err error) {
	if lat, err = strconv.ParseFloat(q.Lat, 64); err != nil {
		return 0, 0, err
	}
	if lon, err = strconv.ParseFloat(q.Lon, 64); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
