// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

// Package validation provides struct validation using go-playground/validator v10.
// It provides a thread-safe singleton validator instance and translates
// validation failures into the API's VALIDATION_ERROR format.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Field names reported by their JSON tag, so errors match request bodies
//   - notblank validator for inputs that must contain non-whitespace text
//   - Uses WithRequiredStructEnabled option (v11+ compatibility)
//
// Example usage:
//
//	type CreatePostRequest struct {
//	    Content   string `json:"content" validate:"max=2000"`
//	    MediaURL  string `json:"media_url" validate:"omitempty,url"`
//	    MediaType string `json:"media_type" validate:"required_with=MediaURL,omitempty,oneof=image video"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, err)
//	    return
//	}
package validation
