// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"tippspiel/auth"
	"tippspiel/cliparse"
	"tippspiel/middleware"
	"tippspiel/models"
	"tippspiel/store"
)

type UserHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewUserHandler(st store.Store, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: st, cfg: cfg}
}

// Register handles POST /api/register
//
// Registration is idempotent per normalized name: registering an existing
// name returns the existing identity with its original token, and never
// rotates the token or creates a second row.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := models.NormalizeName(req.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 30 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be 2-30 characters")
		return
	}

	existing, err := h.store.GetUserByName(name)
	if err == nil {
		middleware.JSONResponse(w, http.StatusOK, existing)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to look up user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user, err := h.store.CreateUser(name, token)
	if err != nil {
		slog.Error("failed to create user", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "name", user.Name)

	middleware.JSONResponse(w, http.StatusOK, user)
}

// currentUser resolves the bearer token on the request to a user. On failure
// it writes a 401 and returns false; authentication always runs before any
// business logic.
func currentUser(st store.Store, w http.ResponseWriter, r *http.Request) (models.User, bool) {
	token, err := auth.BearerToken(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return models.User{}, false
	}

	user, err := st.GetUserByToken(token)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return models.User{}, false
	}
	if err != nil {
		slog.Error("failed to resolve token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.User{}, false
	}

	return user, true
}
