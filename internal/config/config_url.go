// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package config

import (
	"fmt"
	"net/url"
)

// validateBaseURL checks a service root URL. The weather client appends the
// versioned API paths itself, so anything past the host is rejected.
func validateBaseURL(raw, field string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s must use http or https, got %q", field, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s has no host", field)
	case u.Path != "" && u.Path != "/":
		return fmt.Errorf("%s must be the service root, drop the path %q", field, u.Path)
	case u.RawQuery != "":
		return fmt.Errorf("%s must not carry query parameters; the API key goes in OPENWEATHER_API_KEY", field)
	}
	return nil
}
