// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tippspiel/cliparse"
	"tippspiel/middleware"
	"tippspiel/models"
	"tippspiel/store"
)

type TipHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewTipHandler(st store.Store, cfg cliparse.Config) *TipHandler {
	return &TipHandler{store: st, cfg: cfg}
}

// MyTips handles GET /api/my-tips
func (h *TipHandler) MyTips(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(h.store, w, r)
	if !ok {
		return
	}

	tips, err := h.store.GetTipsForUser(user.ID)
	if err != nil {
		slog.Error("failed to list tips", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if tips == nil {
		tips = []models.Tip{}
	}

	middleware.JSONResponse(w, http.StatusOK, tips)
}

// Submit handles POST /api/tips
//
// A tip may be created or changed only strictly before kickoff; at or after
// the kickoff instant the match is locked and the write is rejected with 403.
// Reads stay open. The write itself is a single upsert, so resubmitting the
// same pair overwrites the stored tip instead of adding a row.
func (h *TipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(h.store, w, r)
	if !ok {
		return
	}

	var req models.SubmitTipRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MatchID == "" || req.ScoreA == nil || req.ScoreB == nil ||
		*req.ScoreA < 0 || *req.ScoreB < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "matchId and non-negative scores required")
		return
	}

	match, err := h.store.GetMatch(req.MatchID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		slog.Error("failed to load match", "error", err, "match_id", req.MatchID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if match.Started(time.Now()) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Match has started, tips are locked")
		return
	}

	if err := h.store.UpsertTip(user.ID, match.ID, *req.ScoreA, *req.ScoreB); err != nil {
		slog.Error("failed to upsert tip", "error", err, "user_id", user.ID, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save tip")
		return
	}

	slog.Info("tip saved", "user_id", user.ID, "match_id", match.ID)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
