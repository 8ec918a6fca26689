// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/farmfeed/internal/api"
	"github.com/tomtom215/farmfeed/internal/auth"
	"github.com/tomtom215/farmfeed/internal/config"
	"github.com/tomtom215/farmfeed/internal/logging"
	"github.com/tomtom215/farmfeed/internal/session"
	"github.com/tomtom215/farmfeed/internal/supervisor"
	"github.com/tomtom215/farmfeed/internal/supervisor/services"
	"github.com/tomtom215/farmfeed/internal/weather"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 120 * time.Second
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server terminated")
	}
}

//nolint:gocyclo // Sequential setup steps
func run(cfg *config.Config) error {
	logger := logging.Logger()
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_driver", cfg.Database.Driver).
		Bool("weather_enabled", cfg.Weather.Enabled()).
		Msg("Starting farmfeed with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	posts, err := initPostStore(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := posts.close(); err != nil {
			logger.Error().Err(err).Msg("Error closing database")
		}
	}()

	engine, err := initFeedEngine(cfg, posts.store, logging.WithComponent("feed"))
	if err != nil {
		return err
	}

	sessions := session.NewManager(&cfg.Sessions, engine.NewTracker)

	jwtManager, err := initJWT(cfg, logger)
	if err != nil {
		return err
	}

	weatherClient := weather.NewClient(&cfg.Weather)
	defer weatherClient.Close()
	if !weatherClient.Enabled() {
		logger.Warn().Msg("OPENWEATHER_API_KEY not set; weather endpoint reports NOT_CONFIGURED")
	}

	handler := api.NewHandler(engine, sessions, jwtManager, weatherClient)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.Setup(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}

	// The slog adapter bridges zerolog into sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	tree.AddDataService(session.NewJanitor(sessions, cfg.Sessions.SweepInterval, logging.WithComponent("sessions")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logger.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logger.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logger.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logger.Info().Msg("Application stopped gracefully")
	return nil
}

// initJWT creates the session token manager. Outside production a missing
// secret is replaced by a random one valid for this process only.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initJWT(cfg *config.Config, logger zerolog.Logger) (*auth.JWTManager, error) {
	security := cfg.Security
	if security.JWTSecret == "" && !cfg.IsProduction() {
		secret, err := auth.EphemeralSecret()
		if err != nil {
			return nil, err
		}
		security.JWTSecret = secret
		logger.Warn().Msg("JWT_SECRET not set; using an ephemeral secret, sessions end on restart")
	}

	manager, err := auth.NewJWTManager(&security)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT manager: %w", err)
	}
	return manager, nil
}
