// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"path/filepath"
	"time"

	"tippspiel/cliparse"
	"tippspiel/handlers"
	"tippspiel/middleware"
	"tippspiel/models"
	"tippspiel/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(st, cfg)
	matchHandler := handlers.NewMatchHandler(st, cfg)
	tipHandler := handlers.NewTipHandler(st, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/ping", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.PingResponse{OK: true, Time: time.Now().UTC()})
	})

	// Public API
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("GET /api/matches", middleware.WithLogging(matchHandler.List))
	mux.HandleFunc("GET /api/leaderboard", middleware.WithLogging(leaderboardHandler.Get))

	// Tip operations (bearer token)
	mux.HandleFunc("GET /api/my-tips", middleware.WithLogging(tipHandler.MyTips))
	mux.HandleFunc("POST /api/tips", middleware.WithLogging(tipHandler.Submit))

	// Admin operations (X-Admin-Key)
	mux.HandleFunc("GET /api/admin/matches", middleware.WithLogging(adminHandler.Matches))
	mux.HandleFunc("POST /api/admin/results", middleware.WithLogging(adminHandler.SetResult))
	mux.HandleFunc("POST /api/admin/match-teams", middleware.WithLogging(adminHandler.SetTeams))

	// Static frontend hosting. The bare root serves the login page so the
	// app is gated behind registration.
	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "login.html"))
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("tippspiel API v1"))
		})
	}

	return mux
}
