// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type postRequest struct {
	Content   string `json:"content" validate:"max=20"`
	MediaURL  string `json:"media_url" validate:"omitempty,url"`
	MediaType string `json:"media_type" validate:"required_with=MediaURL,omitempty,oneof=image video"`
}

type cityRequest struct {
	City string  `json:"city" validate:"required_without=Lat,omitempty,notblank"`
	Lat  float64 `json:"lat" validate:"omitempty,latitude"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"text post", &postRequest{Content: "rice paddy"}},
		{"media post", &postRequest{MediaURL: "https://img.example.com/a.jpg", MediaType: "image"}},
		{"unicode at limit", &postRequest{Content: strings.Repeat("धान", 6)}},
		{"city", &cityRequest{City: "Pune"}},
		{"coordinates", &cityRequest{Lat: 18.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "content too long",
			input:     &postRequest{Content: strings.Repeat("a", 21)},
			wantField: "content",
			wantTag:   "max",
			wantMsg:   "content must be at most 20 characters",
		},
		{
			name:      "bad media url",
			input:     &postRequest{MediaURL: "not a url", MediaType: "image"},
			wantField: "media_url",
			wantTag:   "url",
			wantMsg:   "media_url must be a valid URL",
		},
		{
			name:      "media type missing",
			input:     &postRequest{MediaURL: "https://img.example.com/a.jpg"},
			wantField: "media_type",
			wantTag:   "required_with",
			wantMsg:   "media_type is required when MediaURL is set",
		},
		{
			name:      "media type unknown",
			input:     &postRequest{MediaURL: "https://img.example.com/a.jpg", MediaType: "audio"},
			wantField: "media_type",
			wantTag:   "oneof",
			wantMsg:   "media_type must be one of: image video",
		},
		{
			name:      "blank city",
			input:     &cityRequest{City: "   "},
			wantField: "city",
			wantTag:   "notblank",
			wantMsg:   "city must not be blank",
		},
		{
			name:      "latitude out of range",
			input:     &cityRequest{Lat: 123},
			wantField: "lat",
			wantTag:   "latitude",
			wantMsg:   "lat must be a valid latitude (-90 to 90)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := ValidateStruct(&postRequest{Content: strings.Repeat("a", 30)})
		apiErr := err.ToAPIError()

		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
		}
		if apiErr.Details["field"] != "content" {
			t.Errorf("Details[field] = %v, want content", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := ValidateStruct(&postRequest{Content: strings.Repeat("a", 30), MediaURL: "nope"})
		apiErr := err.ToAPIError()

		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok {
			t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
		}
		if len(fields) != 3 {
			t.Errorf("expected 3 field errors, got %d", len(fields))
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("expected joined message, got %q", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

type templateFields struct {
	Name   string   `json:"name" validate:"required"`
	Note   string   `json:"note" validate:"omitempty,notblank"`
	Link   string   `json:"link" validate:"omitempty,url"`
	Site   string   `json:"site" validate:"omitempty,http_url"`
	Lat    *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon    *float64 `json:"lon" validate:"omitempty,longitude"`
	Kind   string   `json:"kind" validate:"omitempty,oneof=image video"`
	City   string   `json:"city" validate:"required_without_all=Lat Lon,excluded_with=Lat"`
	Media  string   `json:"media" validate:"required_with=Kind"`
	Body   string   `json:"body" validate:"required_without=Media"`
	Format string   `json:"format" validate:"excluded_without=Media"`
}

func TestErrorMessageTemplates_AllReachable(t *testing.T) {
	lat := 120.0
	lon := 200.0

	tests := []struct {
		tag   string
		input templateFields
		want  string
	}{
		{"required", templateFields{City: "Pune", Body: "x"}, "name is required"},
		{"notblank", templateFields{Name: "a", Note: "   ", City: "Pune", Body: "x"}, "note must not be blank"},
		{"url", templateFields{Name: "a", Link: "nope", City: "Pune", Body: "x"}, "link must be a valid URL"},
		{"http_url", templateFields{Name: "a", Site: "ftp://host", City: "Pune", Body: "x"}, "site must be a valid http or https URL"},
		{"latitude", templateFields{Name: "a", Lat: &lat, Body: "x"}, "lat must be a valid latitude (-90 to 90)"},
		{"longitude", templateFields{Name: "a", Lon: &lon, City: "Pune", Body: "x"}, "lon must be a valid longitude (-180 to 180)"},
		{"oneof", templateFields{Name: "a", Kind: "audio", Media: "m", City: "Pune"}, "kind must be one of: image video"},
		{"required_without_all", templateFields{Name: "a", Body: "x"}, "city is required when none of Lat Lon are set"},
		{"excluded_with", templateFields{Name: "a", Lat: new(float64), City: "Pune", Body: "x"}, "city must be empty when Lat is set"},
		{"required_with", templateFields{Name: "a", Kind: "image", City: "Pune", Body: "x"}, "media is required when Kind is set"},
		{"required_without", templateFields{Name: "a", City: "Pune"}, "body is required when Media is not set"},
		{"excluded_without", templateFields{Name: "a", Format: "raw", City: "Pune", Body: "x"}, "format must be empty when Media is not set"},
	}

	covered := make(map[string]bool, len(tests))
	for _, tt := range tests {
		covered[tt.tag] = true
		t.Run(tt.tag, func(t *testing.T) {
			input := tt.input
			err := ValidateStruct(&input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			for _, fe := range err.Errors() {
				if fe.Tag() == tt.tag {
					if fe.Error() != tt.want {
						t.Errorf("message = %q, want %q", fe.Error(), tt.want)
					}
					return
				}
			}
			t.Errorf("no %q error in %v", tt.tag, err)
		})
	}

	for tag := range errorMessageTemplates {
		if !covered[tag] {
			t.Errorf("template %q has no validating field", tag)
		}
	}
	for tag := range errorMessageWithParam {
		if !covered[tag] {
			t.Errorf("template %q has no validating field", tag)
		}
	}
}
