// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package logging provides centralized zerolog-based logging for Farmfeed.

A single global zerolog logger is configured once at startup with Init and
used through the package-level helpers. Request-scoped fields (request_id,
session_id) travel on the context and are attached by Ctx.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Int("port", 8417).Msg("Server starting")
	logging.Ctx(ctx).Warn().Err(err).Msg("Weather lookup failed")

Components that need their own logger take a zerolog.Logger by value and add
a component field:

	logger := logging.WithComponent("feed")

# slog Bridge

Libraries that only speak log/slog, such as the suture supervisor's
sutureslog handler, are bridged with NewSlogLogger so that every line still
goes through zerolog.

# Best Practices

Always terminate log chains with .Msg() or .Send():

	logging.Info().Str("key", "value").Msg("message")  // Correct
	logging.Info().Str("key", "value")                 // WRONG - log not emitted
*/
package logging
