// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: name
  - SubmitTipRequest: matchId, scoreA, scoreB
  - SetResultRequest: matchId, resA, resB
  - SetTeamsRequest: matchId, teamA, codeA, teamB, codeB

Score fields are pointers so a missing field can be told apart from a
legitimate zero.

# Response Types

Types for JSON responses:

  - OKResponse: ok
  - PingResponse: ok, time
  - ErrorResponse: error, message
  - MatchView: match with derived kickoffIn, stageLabel, started, result
  - LeaderboardEntry: userId, name, points, tips, exact, winners, rank

# Domain Types

Internal data structures:

  - User: registered player with bearer token
  - Match: fixture with optional recorded result
  - Tip: one player's prediction for one match
  - FinishedTip: tip joined with its match result, input to scoring

# Stages

Fixtures carry a free-form stage string. StageGroup ("group") selects the
group point tier; every other value scores as knockout. StageLabel maps
stages to the display strings "Gruppenphase" and "K.O.-Phase".
*/
package models
