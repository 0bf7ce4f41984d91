// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"tippspiel/auth"
	"tippspiel/cliparse"
	"tippspiel/middleware"
	"tippspiel/models"
	"tippspiel/store"
)

// Short team codes are exactly two lowercase ASCII letters (de, pt, gb).
var codePattern = regexp.MustCompile(`^[a-z]{2}$`)

type AdminHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

// requireAdmin checks the X-Admin-Key header against the configured shared
// secret before anything else runs. Writes a 401 and returns false on
// failure.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.CheckAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// Matches handles GET /api/admin/matches
//
// Same catalog as the public list, admin-gated so the result-entry UI can
// live behind the shared key.
func (h *AdminHandler) Matches(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

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

// SetResult handles POST /api/admin/results
//
// Sets or overwrites the full result of a match. Overwriting is allowed;
// the leaderboard recomputes from stored results, so a correction simply
// shows up on the next read.
func (h *AdminHandler) SetResult(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MatchID == "" || req.ResA == nil || req.ResB == nil ||
		*req.ResA < 0 || *req.ResB < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "matchId and non-negative scores required")
		return
	}

	err := h.store.SetMatchResult(req.MatchID, *req.ResA, *req.ResB, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to set result", "error", err, "match_id", req.MatchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save result")
		return
	}

	slog.Info("result recorded", "match_id", req.MatchID, "res_a", *req.ResA, "res_b", *req.ResB)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// SetTeams handles POST /api/admin/match-teams
//
// Fills in the placeholder pairings of knockout fixtures once the preceding
// round is decided.
func (h *AdminHandler) SetTeams(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.SetTeamsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	teamA := models.NormalizeName(req.TeamA)
	teamB := models.NormalizeName(req.TeamB)
	codeA := strings.ToLower(strings.TrimSpace(req.CodeA))
	codeB := strings.ToLower(strings.TrimSpace(req.CodeB))

	if req.MatchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "matchId required")
		return
	}
	if !validTeamName(teamA) || !validTeamName(teamB) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "team names must be 2-60 characters")
		return
	}
	if !codePattern.MatchString(codeA) || !codePattern.MatchString(codeB) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "codes must be two lowercase letters (e.g. de, pt)")
		return
	}

	err := h.store.SetMatchTeams(req.MatchID, teamA, codeA, teamB, codeB)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to set teams", "error", err, "match_id", req.MatchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save teams")
		return
	}

	slog.Info("teams updated", "match_id", req.MatchID, "team_a", teamA, "team_b", teamB)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

func validTeamName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 60
}
