// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/farmfeed/internal/auth"
	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/feed"
	"github.com/tomtom215/farmfeed/internal/models"
	"github.com/tomtom215/farmfeed/internal/session"
	"github.com/tomtom215/farmfeed/internal/store"
	"github.com/tomtom215/farmfeed/internal/weather"
)

const (
	testSecret     = "test-secret-with-at-least-32-characters!"
	testWeatherKey = "0123456789abcdef0123456789abcdef"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func hoursAgo(h float64) int64 {
	return testNow.Add(-time.Duration(h * float64(time.Hour))).UnixMilli()
}

func farmPosts() []feed.Post {
	return []feed.Post{
		{ID: "rice1", Content: "Rice paddy looks great after irrigation", Likes: 1, Timestamp: hoursAgo(30)},
		{ID: "pest", Content: "Worm and insect pest on my cotton", Likes: 4, Timestamp: hoursAgo(50)},
		{ID: "rice2", Content: "rice harvest yield this season", Timestamp: hoursAgo(10)},
		{ID: "market", Content: "market day", Likes: 2, Timestamp: hoursAgo(60)},
		{ID: "photo", Media: &feed.Media{URL: "https://example.com/a.jpg", Type: "image"}, Timestamp: hoursAgo(1)},
		{ID: "tomato", Content: "tomato seedling transplant done", Timestamp: testNow.Add(-30 * time.Second).UnixMilli()},
		{ID: "drip", Content: "drip irrigation install", Likes: 1, Timestamp: hoursAgo(70)},
	}
}

// testAPI is a fully wired router over an in-memory store.
type testAPI struct {
	handler  http.Handler
	store    *store.MemoryStore
	sessions *session.Manager
	jwt      *auth.JWTManager
}

type apiOption func(*apiOptions)

type apiOptions struct {
	weather *config.WeatherConfig
	store   feed.PostStore
}

func withWeather(baseURL string) apiOption {
	return func(o *apiOptions) {
		o.weather = &config.WeatherConfig{APIKey: testWeatherKey, BaseURL: baseURL, RateLimit: 100, Burst: 100}
	}
}

func withStore(s feed.PostStore) apiOption {
	return func(o *apiOptions) { o.store = s }
}

func newTestAPI(t *testing.T, opts ...apiOption) *testAPI {
	t.Helper()

	o := apiOptions{weather: &config.WeatherConfig{}}
	for _, opt := range opts {
		opt(&o)
	}

	mem := store.NewMemoryStore(farmPosts()...)
	var postStore feed.PostStore = mem
	if o.store != nil {
		postStore = o.store
	}

	engine, err := feed.NewEngine(feed.DefaultConfig(), feed.DefaultVocabulary(), postStore, feed.FixedClock{T: testNow}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	sessions := session.NewManager(&config.SessionsConfig{IdleTimeout: time.Hour, MaxSessions: 100}, engine.NewTracker)

	jwtManager, err := auth.NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	weatherClient := weather.NewClient(o.weather)
	t.Cleanup(weatherClient.Close)

	handler := NewHandler(engine, sessions, jwtManager, weatherClient)
	router := NewRouter(handler, auth.NewMiddleware(jwtManager), nil)

	return &testAPI{
		handler:  router.Setup(),
		store:    mem,
		sessions: sessions,
		jwt:      jwtManager,
	}
}

// do sends a request with an optional bearer token and JSON body.
func (a *testAPI) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// startSession creates a session through the API and returns its token.
func (a *testAPI) startSession(t *testing.T) models.SessionResponse {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/v1/session", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /session status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp models.SessionResponse
	decodeData(t, rec, &resp)
	return resp
}

type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

// assertError checks the status code and error code of a failed response.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	return env
}
