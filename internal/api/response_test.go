// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/farmfeed/internal/models"
)

func TestGenerateETag(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty data", []byte{}},
		{"simple string", []byte("hello world")},
		{"json data", []byte(`{"key": "value", "count": 123}`)},
		{"binary data", []byte{0x00, 0xFF, 0x55, 0xAA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			etag := generateETag(tt.input)
			if etag == "" {
				t.Error("generateETag() returned empty string")
			}
			if etag != generateETag(tt.input) {
				t.Error("generateETag() is not deterministic")
			}
		})
	}

	if generateETag([]byte("hello")) == generateETag([]byte("world")) {
		t.Error("different inputs produced the same ETag")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"धान", "धान"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRespondJSON_Headers(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, &models.APIResponse{Status: "success", Data: map[string]int{"n": 1}})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "private, no-cache" {
		t.Errorf("Cache-Control = %q", got)
	}
	if rec.Header().Get("ETag") != generateETag(rec.Body.Bytes()) {
		t.Error("ETag does not match body")
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(rec, req, http.StatusServiceUnavailable, models.ErrCodeStore, "Post store unavailable", errors.New("dial tcp: refused"))

	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
	if env.Status != "error" || env.Error == nil || env.Error.Code != models.ErrCodeStore {
		t.Errorf("envelope = %+v", env)
	}
	if strings.Contains(rec.Body.String(), "dial tcp") {
		t.Error("internal error text leaked into the response")
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"content":"rice"}`, false},
		{"empty", ``, true},
		{"unknown field", `{"content":"rice","extra":1}`, true},
		{"oversized", `{"content":"` + strings.Repeat("a", maxBodyBytes) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst CreatePostRequest
			err := decodeJSON(httptest.NewRecorder(), req, &dst)
			if (err != nil) != tt.wantErr {
				t.Errorf("decodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
