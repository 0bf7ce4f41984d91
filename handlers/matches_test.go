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

func TestListMatches(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewMatchHandler(store.New(conn), testutil.GetTestConfig())

	// Seeded out of kickoff order on purpose.
	later := testutil.SeedTestMatch(t, conn, "m2", time.Now().Add(48*time.Hour), "final")
	earlier := testutil.SeedTestMatch(t, conn, "m1", time.Now().Add(-time.Hour), "group")
	testutil.SetTestResult(t, conn, earlier, 2, 0)

	req := testutil.MakeRequest("GET", "/api/matches", nil, nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	testutil.AssertStatus(t, w, 200)

	var views []models.MatchView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(views))
	}

	// Kickoff order.
	if views[0].ID != earlier || views[1].ID != later {
		t.Fatalf("expected kickoff order %s, %s; got %s, %s",
			earlier, later, views[0].ID, views[1].ID)
	}

	started := views[0]
	if !started.Started {
		t.Error("past-kickoff match should be started")
	}
	if started.Result == nil || started.Result.A != 2 || started.Result.B != 0 {
		t.Errorf("expected result 2:0, got %+v", started.Result)
	}
	if started.StageLabel != "Gruppenphase" {
		t.Errorf("unexpected stage label %q", started.StageLabel)
	}

	upcoming := views[1]
	if upcoming.Started {
		t.Error("future match should not be started")
	}
	if upcoming.Result != nil {
		t.Errorf("expected no result, got %+v", upcoming.Result)
	}
	if upcoming.StageLabel != "K.O.-Phase" {
		t.Errorf("unexpected stage label %q", upcoming.StageLabel)
	}
	if upcoming.KickoffIn == "" {
		t.Error("expected a relative kickoff string")
	}
}
