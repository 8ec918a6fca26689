// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package api serves the farmfeed HTTP API.

Every response uses the models.APIResponse envelope. Routes:

	GET  /api/v1/health/live
	POST /api/v1/session               start an anonymous session, returns a token
	DELETE /api/v1/session             end the caller's session
	GET  /api/v1/feed                  ranked feed, trending and recommended lists
	GET  /api/v1/feed/trending
	GET  /api/v1/feed/recommended
	POST /api/v1/posts                 publish a post
	POST /api/v1/posts/{postID}/like   like a post and return the refreshed view
	GET  /api/v1/weather               ?lat=&lon=[&label=] or ?city=
	GET  /metrics

Everything except health, session start and metrics requires the session
token issued by POST /api/v1/session, sent as a Bearer token or the "token"
cookie. A token whose session was discarded for inactivity gets a 401 with
code SESSION_EXPIRED so the client can start a new one.

Feed handlers never fail as a whole when the post store is down: the feed
and trending lists degrade independently to empty lists carrying the
user-facing message, as in the ranking engine.
*/
package api
