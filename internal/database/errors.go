// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package database

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/farmfeed/internal/feed"
)

// unavailable wraps an infrastructure error so that it matches
// feed.ErrStoreUnavailable. Context cancellation is passed through
// unchanged.
func unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", feed.ErrStoreUnavailable, op, err)
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
