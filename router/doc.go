// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Tippspiel API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health
	GET /api/ping

Public:

	POST /api/register    - Register or log back in
	GET  /api/matches     - Fixture list
	GET  /api/leaderboard - Current standings

Player (requires Authorization: Bearer):

	GET  /api/my-tips - Own tips
	POST /api/tips    - Submit or overwrite a tip

Admin (requires X-Admin-Key):

	GET  /api/admin/matches     - Fixtures including results
	POST /api/admin/results     - Record or correct a result
	POST /api/admin/match-teams - Fill knockout pairings

# Static Hosting

With StaticDir configured, the root serves the frontend with login.html
as the entry page. Without it, the root answers with a plain banner.

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(st, cfg)
	matchHandler := handlers.NewMatchHandler(st, cfg)
	tipHandler := handlers.NewTipHandler(st, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

All handlers receive the store and configuration.
*/
package router
