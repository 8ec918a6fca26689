// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/farmfeed/internal/cache"
	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/logging"
	"github.com/tomtom215/farmfeed/internal/metrics"
)

const (
	defaultBaseURL  = "https://api.openweathermap.org"
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 10 * time.Minute

	// maxBodyBytes caps how much of an API response is read.
	maxBodyBytes = 1 << 20
)

// Client talks to the OpenWeather API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	enabled    bool
	limiter    *rate.Limiter

	reports   *cache.Cache[currentResponse]
	locations *cache.Cache[Location]
}

// NewClient creates a client from the weather configuration. A client
// without a usable API key is still returned; its lookups fail with
// ErrNotConfigured.
func NewClient(cfg *config.WeatherConfig) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(1), 5),
	}

	ttl := defaultCacheTTL
	if cfg != nil {
		c.apiKey = cfg.APIKey
		c.enabled = cfg.Enabled()
		if cfg.BaseURL != "" {
			c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		if cfg.Timeout > 0 {
			c.httpClient.Timeout = cfg.Timeout
		}
		if cfg.CacheTTL > 0 {
			ttl = cfg.CacheTTL
		}
		if cfg.RateLimit > 0 && cfg.Burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
		}
	}

	c.reports = cache.New[currentResponse](ttl, time.Minute)
	c.locations = cache.New[Location](ttl, time.Minute)
	return c
}

// Enabled reports whether the client has a usable API key.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Close stops the cache sweepers.
func (c *Client) Close() {
	c.reports.Stop()
	c.locations.Stop()
}

// Current returns the weather at lat/lon. label overrides the place name
// reported by the API; when both are empty DefaultLabel is used.
func (c *Client) Current(ctx context.Context, lat, lon float64, label string) (Report, error) {
	if !c.enabled {
		metrics.RecordWeatherRequest("current", "not_configured")
		return Report{}, ErrNotConfigured
	}

	key := cache.GenerateKey("weather", [2]float64{roundCoord(lat), roundCoord(lon)})
	data, ok := c.reports.Get(key)
	if ok {
		metrics.RecordWeatherRequest("current", "cache_hit")
	} else {
		params := url.Values{}
		params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
		params.Set("units", "metric")

		if err := c.get(ctx, "/data/2.5/weather", params, &data); err != nil {
			metrics.RecordWeatherRequest("current", "error")
			return Report{}, fmt.Errorf("%w: %w", ErrWeatherFetchFailed, err)
		}
		if data.Main == nil {
			metrics.RecordWeatherRequest("current", "error")
			return Report{}, fmt.Errorf("%w: response has no conditions", ErrWeatherFetchFailed)
		}
		c.reports.Set(key, data)
		metrics.RecordWeatherRequest("current", "ok")
	}

	return toReport(data, label), nil
}

// Geocode returns the first match for a city name.
func (c *Client) Geocode(ctx context.Context, city string) (Location, error) {
	if !c.enabled {
		metrics.RecordWeatherRequest("geocode", "not_configured")
		return Location{}, ErrNotConfigured
	}

	name := strings.TrimSpace(city)
	if name == "" {
		return Location{}, ErrCityNotFound
	}

	key := "geo:" + strings.ToLower(name)
	if loc, ok := c.locations.Get(key); ok {
		metrics.RecordWeatherRequest("geocode", "cache_hit")
		return loc, nil
	}

	params := url.Values{}
	params.Set("q", name)
	params.Set("limit", "1")

	var results []geoResult
	if err := c.get(ctx, "/geo/1.0/direct", params, &results); err != nil {
		metrics.RecordWeatherRequest("geocode", "error")
		return Location{}, fmt.Errorf("%w: %w", ErrGeoLookupFailed, err)
	}
	if len(results) == 0 {
		metrics.RecordWeatherRequest("geocode", "not_found")
		return Location{}, ErrCityNotFound
	}

	first := results[0]
	loc := Location{
		Lat:   first.Lat,
		Lon:   first.Lon,
		Label: fmt.Sprintf("%s, %s", first.Name, first.Country),
	}
	c.locations.Set(key, loc)
	metrics.RecordWeatherRequest("geocode", "ok")
	return loc, nil
}

// CityWeather geocodes city and returns its current weather labelled with
// the matched city and country.
func (c *Client) CityWeather(ctx context.Context, city string) (Report, error) {
	loc, err := c.Geocode(ctx, city)
	if err != nil {
		return Report{}, err
	}
	return c.Current(ctx, loc.Lat, loc.Lon, loc.Label)
}

// get performs a rate-limited GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	params.Set("appid", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the API key; keep it out of logs.
		return fmt.Errorf("request %s failed: %w", path, unwrapURLError(err))
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBodyBytes)
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, body)
		logging.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("OpenWeather returned an error status")
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func toReport(data currentResponse, label string) Report {
	desc := "Weather"
	if len(data.Weather) > 0 && data.Weather[0].Description != "" {
		desc = data.Weather[0].Description
	}

	switch {
	case label != "":
	case data.Name != "":
		label = data.Name
	default:
		label = DefaultLabel
	}

	r := Report{Label: label, Description: desc}
	if data.Main != nil {
		r.TempC = roundHalfUp(data.Main.Temp)
		r.Humidity = data.Main.Humidity
	}
	return r
}

// roundHalfUp rounds x.5 towards positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// roundCoord keeps two decimals (about 1 km), enough to share cache
// entries between nearby readers.
func roundCoord(v float64) float64 {
	return math.Round(v*100) / 100
}
