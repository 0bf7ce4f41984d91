// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Tippspiel API server.

Tippspiel is a prediction-game service for the 2026 tournament: players
submit score tips before kickoff, an admin records results, and the server
ranks everyone by points.

# Starting the Server

The server reads configuration from the environment (optionally via .env)
or CLI flags:

	ADMIN_KEY=... go run .

Or with flags:

	go run . -p 3001 -d tippspiel.sqlite3 -admin-key ...

# Configuration

Required settings:

  - ADMIN_KEY (-admin-key): shared secret for the admin endpoints

Optional settings:

  - PORT (-p): server port (default: 3001)
  - DATABASE_PATH (-d): sqlite file (default: tippspiel.sqlite3)
  - STATIC_DIR (-s): directory of frontend files to host

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, matches, tips, leaderboard, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and request/response types
  - scoring: the points calculator and leaderboard aggregation
  - store: storage port and its sqlite implementation
  - auth: token generation and admin key verification
  - db: schema creation and fixture seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
