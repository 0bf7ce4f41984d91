// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"tippspiel/models"
)

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name                   string
		tipA, tipB, resA, resB int
		stage                  string
		want                   int
	}{
		{"exact scoreline, group", 3, 1, 3, 1, "group", 5 + 3 + 1 + 1},
		{"exact scoreline, knockout", 3, 1, 3, 1, "final", 10 + 6 + 2 + 2},
		{"exact draw, group", 1, 1, 1, 1, "group", 5 + 3 + 1 + 1},
		{"draw predicted, draw happened, wrong scores", 0, 0, 2, 2, "group", 5 + 3},
		{"correct outcome, wrong margin, home goals right", 2, 0, 3, 0, "group", 5 + 0 + 1},
		{"correct outcome and margin, no goals right", 2, 1, 3, 2, "group", 5 + 3},
		{"wrong outcome, no goal match", 1, 0, 0, 2, "group", 0},
		{"wrong outcome, away goals right", 1, 0, 0, 0, "group", 1},
		{"wrong outcome, home goals right", 2, 1, 2, 3, "group", 1},
		{"knockout tier for unknown stage label", 2, 0, 2, 0, "round_of_32", 10 + 6 + 2 + 2},
		{"knockout tier for quarterfinal", 1, 0, 2, 0, "quarterfinal", 10 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.tipA, tt.tipB, tt.resA, tt.resB, tt.stage)
			if got != tt.want {
				t.Errorf("ComputePoints(%d,%d,%d,%d,%q) = %d, want %d",
					tt.tipA, tt.tipB, tt.resA, tt.resB, tt.stage, got, tt.want)
			}
		})
	}
}

// Swapping both the prediction and the result between home and away must not
// change the score.
func TestComputePointsSwapSymmetry(t *testing.T) {
	for _, stage := range []string{"group", "semifinal"} {
		for tipA := 0; tipA <= 4; tipA++ {
			for tipB := 0; tipB <= 4; tipB++ {
				for resA := 0; resA <= 4; resA++ {
					for resB := 0; resB <= 4; resB++ {
						straight := ComputePoints(tipA, tipB, resA, resB, stage)
						swapped := ComputePoints(tipB, tipA, resB, resA, stage)
						if straight != swapped {
							t.Fatalf("asymmetric: (%d,%d,%d,%d,%s) = %d but swapped = %d",
								tipA, tipB, resA, resB, stage, straight, swapped)
						}
					}
				}
			}
		}
	}
}

// The knockout tier dominates the group tier for any identical prediction.
func TestKnockoutDominatesGroup(t *testing.T) {
	for tipA := 0; tipA <= 4; tipA++ {
		for tipB := 0; tipB <= 4; tipB++ {
			for resA := 0; resA <= 4; resA++ {
				for resB := 0; resB <= 4; resB++ {
					group := ComputePoints(tipA, tipB, resA, resB, "group")
					ko := ComputePoints(tipA, tipB, resA, resB, "final")
					if group > ko {
						t.Fatalf("group %d > knockout %d for (%d,%d,%d,%d)",
							group, ko, tipA, tipB, resA, resB)
					}
				}
			}
		}
	}
}

func TestLeaderboardStandardCompetitionRanking(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Anna"},
		{ID: "u2", Name: "Ben"},
		{ID: "u3", Name: "Clara"},
		{ID: "u4", Name: "Dora"},
	}

	// Anna, Ben and Clara all land on 10 points; Dora on 6.
	rows := []models.FinishedTip{
		{UserID: "u1", Stage: "group", TipA: 3, TipB: 1, ResA: 3, ResB: 1},
		{UserID: "u2", Stage: "group", TipA: 3, TipB: 1, ResA: 3, ResB: 1},
		{UserID: "u3", Stage: "group", TipA: 3, TipB: 1, ResA: 3, ResB: 1},
		{UserID: "u4", Stage: "group", TipA: 2, TipB: 0, ResA: 3, ResB: 0},
	}

	entries := Leaderboard(users, rows)
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	for i := 0; i < 3; i++ {
		if entries[i].Points != 10 {
			t.Errorf("entry %d: expected 10 points, got %d", i, entries[i].Points)
		}
		if entries[i].Rank != 1 {
			t.Errorf("entry %d: expected rank 1, got %d", i, entries[i].Rank)
		}
	}

	// Three users tied at rank 1: the next distinct total takes rank 4, not 2.
	if entries[3].Rank != 4 {
		t.Errorf("expected rank 4 after a three-way tie, got %d", entries[3].Rank)
	}
	if entries[3].UserID != "u4" {
		t.Errorf("expected u4 last, got %s", entries[3].UserID)
	}
}

func TestLeaderboardSeedsZeroTipUsers(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Anna"},
		{ID: "u2", Name: "Ben"}, // no tips at all
	}
	rows := []models.FinishedTip{
		{UserID: "u1", Stage: "group", TipA: 1, TipB: 0, ResA: 1, ResB: 0},
	}

	entries := Leaderboard(users, rows)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].UserID != "u2" {
		t.Fatalf("expected zero-tip user at the bottom, got %s", entries[1].UserID)
	}
	if entries[1].Points != 0 || entries[1].Tips != 0 {
		t.Errorf("zero-tip user should have empty counters, got %+v", entries[1])
	}
	if entries[1].Rank != 2 {
		t.Errorf("expected rank 2 for zero-tip user, got %d", entries[1].Rank)
	}
}

func TestLeaderboardTieBreakOrder(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Zoe"},
		{ID: "u2", Name: "Adam"},
		{ID: "u3", Name: "adam"},
	}

	// Zoe: exact 2:1 in group (10 points, 1 exact, 1 winner).
	// Adam and adam: outcome + margin in group (8) plus one correct goal in
	// a knockout match (2) - also 10 points, but 0 exact results, so the
	// exact-results key puts Zoe first.
	rows := []models.FinishedTip{
		{UserID: "u1", Stage: "group", TipA: 2, TipB: 1, ResA: 2, ResB: 1},
		{UserID: "u2", Stage: "group", TipA: 2, TipB: 1, ResA: 3, ResB: 2},
		{UserID: "u2", Stage: "final", TipA: 1, TipB: 0, ResA: 1, ResB: 2},
		{UserID: "u3", Stage: "group", TipA: 2, TipB: 1, ResA: 3, ResB: 2},
		{UserID: "u3", Stage: "final", TipA: 1, TipB: 0, ResA: 1, ResB: 2},
	}

	entries := Leaderboard(users, rows)

	if entries[0].UserID != "u1" {
		t.Fatalf("expected u1 (exact result) first, got %s", entries[0].UserID)
	}
	// "Adam" sorts before "adam" byte-wise.
	if entries[1].UserID != "u2" || entries[2].UserID != "u3" {
		t.Errorf("expected case-sensitive name order u2, u3; got %s, %s",
			entries[1].UserID, entries[2].UserID)
	}

	// All three share 10 points, so all three share rank 1 regardless of the
	// secondary ordering keys.
	for i, e := range entries {
		if e.Points != 10 {
			t.Fatalf("entry %d: expected 10 points, got %d", i, e.Points)
		}
		if e.Rank != 1 {
			t.Errorf("entry %d: expected rank 1, got %d", i, e.Rank)
		}
	}
}
