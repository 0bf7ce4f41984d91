// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store defines the storage port and its sqlite implementation.
package store

import (
	"errors"
	"time"

	"tippspiel/models"
)

// ErrNotFound is returned when a referenced user or match does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence port consumed by the HTTP handlers. Handlers
// depend on this interface rather than a database handle so that the
// scoring paths can be exercised against any backing implementation.
type Store interface {
	// Users
	GetUserByName(name string) (models.User, error)
	GetUserByToken(token string) (models.User, error)
	CreateUser(name, token string) (models.User, error)
	ListUsers() ([]models.User, error)

	// Matches
	ListMatches() ([]models.Match, error)
	GetMatch(id string) (models.Match, error)
	SetMatchResult(id string, resA, resB int, at time.Time) error
	SetMatchTeams(id, teamA, codeA, teamB, codeB string) error

	// Tips
	GetTipsForUser(userID string) ([]models.Tip, error)
	UpsertTip(userID, matchID string, scoreA, scoreB int) error

	// ListFinishedTips returns the leaderboard join rows: every tip against
	// a match whose result is fully set.
	ListFinishedTips() ([]models.FinishedTip, error)
}
