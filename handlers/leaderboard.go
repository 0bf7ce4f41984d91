// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"tippspiel/cliparse"
	"tippspiel/middleware"
	"tippspiel/scoring"
	"tippspiel/store"
)

type LeaderboardHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(st store.Store, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: st, cfg: cfg}
}

// Get handles GET /api/leaderboard
//
// The ranking is recomputed from the stored tips and results on every call,
// so overwriting a result and re-requesting the leaderboard always yields
// the totals for the current results. All scoring goes through the scoring
// package; this handler only fetches and serves.
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.store.ListFinishedTips()
	if err != nil {
		slog.Error("failed to list finished tips", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scoring.Leaderboard(users, rows))
}
