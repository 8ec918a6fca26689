// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package models defines the HTTP envelope types shared by the Farmfeed API.

Every endpoint responds with APIResponse. Successful calls carry their
payload in Data; failed calls carry an APIError with one of the ErrCode
constants. Feed-specific view models live next to their handlers in
internal/api.
*/
package models
