// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"tippspiel/models"
	"tippspiel/store"
	"tippspiel/testutil"
)

func adminKey() map[string]string {
	return map[string]string{"X-Admin-Key": testutil.TestAdminKey}
}

func TestAdminAuth(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewAdminHandler(store.New(conn), testutil.GetTestConfig())

	// No key
	req := testutil.MakeRequest("GET", "/api/admin/matches", nil, nil)
	w := httptest.NewRecorder()
	h.Matches(w, req)
	testutil.AssertStatus(t, w, 401)

	// Wrong key
	req = testutil.MakeRequest("GET", "/api/admin/matches", nil,
		map[string]string{"X-Admin-Key": "wrong"})
	w = httptest.NewRecorder()
	h.Matches(w, req)
	testutil.AssertStatus(t, w, 401)

	// Correct key
	req = testutil.MakeRequest("GET", "/api/admin/matches", nil, adminKey())
	w = httptest.NewRecorder()
	h.Matches(w, req)
	testutil.AssertStatus(t, w, 200)
}

func TestSetResult(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	h := NewAdminHandler(st, testutil.GetTestConfig())

	matchID := testutil.SeedTestMatch(t, conn, "m1", time.Now().Add(-2*time.Hour), "group")

	req := testutil.MakeRequest("POST", "/api/admin/results", models.SetResultRequest{
		MatchID: matchID, ResA: intp(3), ResB: intp(1),
	}, adminKey())
	w := httptest.NewRecorder()
	h.SetResult(w, req)
	testutil.AssertStatus(t, w, 200)

	m, err := st.GetMatch(matchID)
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if !m.HasResult() || *m.ResA != 3 || *m.ResB != 1 {
		t.Fatalf("expected stored result 3:1, got %+v", m)
	}

	// Corrections overwrite.
	req = testutil.MakeRequest("POST", "/api/admin/results", models.SetResultRequest{
		MatchID: matchID, ResA: intp(2), ResB: intp(2),
	}, adminKey())
	w = httptest.NewRecorder()
	h.SetResult(w, req)
	testutil.AssertStatus(t, w, 200)

	m, _ = st.GetMatch(matchID)
	if *m.ResA != 2 || *m.ResB != 2 {
		t.Errorf("expected corrected result 2:2, got %d:%d", *m.ResA, *m.ResB)
	}
}

func TestSetResultValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewAdminHandler(store.New(conn), testutil.GetTestConfig())

	testutil.SeedTestMatch(t, conn, "m1", time.Now().Add(-time.Hour), "group")

	tests := []struct {
		name string
		req  models.SetResultRequest
		want int
	}{
		{"missing match", models.SetResultRequest{ResA: intp(1), ResB: intp(1)}, 400},
		{"missing resA", models.SetResultRequest{MatchID: "m1", ResB: intp(1)}, 400},
		{"negative", models.SetResultRequest{MatchID: "m1", ResA: intp(-1), ResB: intp(0)}, 400},
		{"unknown match", models.SetResultRequest{MatchID: "nope", ResA: intp(1), ResB: intp(1)}, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/results", tt.req, adminKey())
			w := httptest.NewRecorder()
			h.SetResult(w, req)
			testutil.AssertStatus(t, w, tt.want)
		})
	}
}

func TestSetTeams(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	h := NewAdminHandler(st, testutil.GetTestConfig())

	matchID := testutil.SeedTestMatch(t, conn, "r32_1", time.Now().Add(72*time.Hour), "round_of_32")

	req := testutil.MakeRequest("POST", "/api/admin/match-teams", models.SetTeamsRequest{
		MatchID: matchID,
		TeamA:   "  Deutschland ", CodeA: "DE",
		TeamB: "Portugal", CodeB: "pt",
	}, adminKey())
	w := httptest.NewRecorder()
	h.SetTeams(w, req)
	testutil.AssertStatus(t, w, 200)

	m, err := st.GetMatch(matchID)
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	// Names normalized, codes lowercased.
	if m.TeamA != "Deutschland" || m.CodeA != "de" || m.TeamB != "Portugal" || m.CodeB != "pt" {
		t.Errorf("unexpected teams: %+v", m)
	}
}

func TestSetTeamsValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewAdminHandler(store.New(conn), testutil.GetTestConfig())

	testutil.SeedTestMatch(t, conn, "m1", time.Now().Add(time.Hour), "group")

	tests := []struct {
		name string
		req  models.SetTeamsRequest
		want int
	}{
		{"missing match", models.SetTeamsRequest{TeamA: "AA", CodeA: "aa", TeamB: "BB", CodeB: "bb"}, 400},
		{"short name", models.SetTeamsRequest{MatchID: "m1", TeamA: "A", CodeA: "aa", TeamB: "BB", CodeB: "bb"}, 400},
		{"bad code length", models.SetTeamsRequest{MatchID: "m1", TeamA: "AA", CodeA: "abc", TeamB: "BB", CodeB: "bb"}, 400},
		{"numeric code", models.SetTeamsRequest{MatchID: "m1", TeamA: "AA", CodeA: "a1", TeamB: "BB", CodeB: "bb"}, 400},
		{"unknown match", models.SetTeamsRequest{MatchID: "nope", TeamA: "AA", CodeA: "aa", TeamB: "BB", CodeB: "bb"}, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/match-teams", tt.req, adminKey())
			w := httptest.NewRecorder()
			h.SetTeams(w, req)
			testutil.AssertStatus(t, w, tt.want)
		})
	}
}
