// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"tippspiel/cliparse"
	"tippspiel/middleware"
	"tippspiel/models"
	"tippspiel/store"
)

type MatchHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewMatchHandler(st store.Store, cfg cliparse.Config) *MatchHandler {
	return &MatchHandler{store: st, cfg: cfg}
}

// List handles GET /api/matches
//
// Returns the full fixture catalog in kickoff order, with a started flag per
// match so clients can grey out locked fixtures.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.store.ListMatches()
	if err != nil {
		slog.Error("failed to list matches", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	views := make([]models.MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView(m, now))
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

func matchView(m models.Match, now time.Time) models.MatchView {
	v := models.MatchView{
		ID:         m.ID,
		TeamA:      m.TeamA,
		CodeA:      m.CodeA,
		TeamB:      m.TeamB,
		CodeB:      m.CodeB,
		Kickoff:    m.Kickoff,
		KickoffIn:  humanize.Time(m.Kickoff),
		Stage:      m.Stage,
		StageLabel: models.StageLabel(m.Stage),
		Started:    m.Started(now),
	}
	if m.HasResult() {
		v.Result = &models.MatchResult{A: *m.ResA, B: *m.ResB}
	}
	return v
}
