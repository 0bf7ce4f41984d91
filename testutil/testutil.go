// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tippspiel/auth"
	"tippspiel/cliparse"
	"tippspiel/db"
)

// TestAdminKey is the shared admin secret used by handler tests.
const TestAdminKey = "test-admin-key"

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// The pool must stay on one connection: every new connection to
	// :memory: would open its own empty database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabasePath: ":memory:",
		AdminKey:     TestAdminKey,
	}
}

// SeedTestMatch inserts one match with placeholder teams and returns its ID.
func SeedTestMatch(t *testing.T, conn *sql.DB, id string, kickoff time.Time, stage string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO matches (id, team_a, code_a, team_b, code_b, kickoff, stage)
		VALUES (?, 'Heim', 'hh', 'Gast', 'gg', ?, ?)
	`, id, kickoff.UTC().Format(time.RFC3339), stage)
	if err != nil {
		t.Fatalf("Failed to seed test match: %v", err)
	}

	return id
}

// SetTestResult writes a finished result for a match.
func SetTestResult(t *testing.T, conn *sql.DB, matchID string, resA, resB int) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE matches SET res_a = ?, res_b = ?, result_set_at = ? WHERE id = ?
	`, resA, resB, time.Now().UTC().Format(time.RFC3339), matchID)
	if err != nil {
		t.Fatalf("Failed to set test result: %v", err)
	}
}

// CreateTestUser registers a user directly in the database and returns its
// ID and bearer token.
func CreateTestUser(t *testing.T, conn *sql.DB, name string) (userID, token string) {
	t.Helper()

	userID = uuid.NewString()
	token, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, name, token, created_at)
		VALUES (?, ?, ?, ?)
	`, userID, name, token, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID, token
}

// InsertTestTip writes a tip row directly, bypassing the kickoff lock.
func InsertTestTip(t *testing.T, conn *sql.DB, userID, matchID string, scoreA, scoreB int) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := conn.Exec(`
		INSERT INTO tips (user_id, match_id, score_a, score_b, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, userID, matchID, scoreA, scoreB, now, now)
	if err != nil {
		t.Fatalf("Failed to insert test tip: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
