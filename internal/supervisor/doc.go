// Farmfeed - Feed Ranking and Personalization for Farming Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/farmfeed

/*
Package supervisor runs farmfeed's long-lived services under a suture v4
supervisor tree.

	RootSupervisor ("farmfeed")
	├── DataSupervisor ("data-layer")
	│   └── session.Janitor         expires idle sessions
	└── APISupervisor ("api-layer")
	    └── HTTPServerService       the HTTP API

A crashed service is restarted with backoff; a failure in one layer does not
stop the other. Supervisor events are logged through sutureslog, which the
server wires to zerolog with logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(session.NewJanitor(sessions, cfg.Sessions.SweepInterval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
