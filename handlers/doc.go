// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Tippspiel API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - UserHandler: Registration and login
  - MatchHandler: Public match listing
  - TipHandler: Tip submission and retrieval
  - LeaderboardHandler: Ranking computation
  - AdminHandler: Result and team management

Handlers are created via constructor functions that accept store.Store and Config:

	tipHandler := handlers.NewTipHandler(st, cfg)

# Player Flow

Players register once with a display name and keep their bearer token:

	POST /api/register → Register (returns token; idempotent per name)
	GET  /api/my-tips  → MyTips
	POST /api/tips     → Submit (create or overwrite, rejected after kickoff)

Player operations require the Authorization: Bearer header.

# Lock Rule

A tip is accepted only while the match has not started. Kickoff itself
counts as started, so a submission at exactly kickoff returns 403 and
the stored tip is untouched.

# Scoring

Points are computed on the fly from finished matches; see the scoring
package. Corrections to a result simply change the next leaderboard
response, nothing is persisted.

# Admin Operations

Admin endpoints manage the match catalog:

	GET  /api/admin/matches     → Matches (includes results)
	POST /api/admin/results     → SetResult (overwrite allowed)
	POST /api/admin/match-teams → SetTeams (fill knockout placeholders)

Admin operations require the X-Admin-Key header.
*/
package handlers
