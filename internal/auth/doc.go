// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package auth issues and verifies the signed tokens that identify anonymous
Farmfeed sessions.

Key Components:

  - JWTManager: HS256 token generation and validation. Each token carries
    the session ID in the "sid" claim and expires after
    security.session_timeout.
  - Middleware: chi-compatible middleware that extracts the token from the
    Authorization header (Bearer) or the "token" cookie, validates it and
    stores the claims in the request context.

Tokens only prove that a session was started by this server. Whether the
session is still alive is checked against internal/session by the API
handlers.

Usage:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	token, expiresAt, err := jwtManager.GenerateToken(sess.ID)

	r.With(auth.NewMiddleware(jwtManager).Authenticate).Get("/feed", handler)
*/
package auth
