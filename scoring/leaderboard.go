// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"tippspiel/models"
)

// Leaderboard aggregates finished-match tips into a ranked table.
//
// Every registered user receives an entry, so users without a single tip
// show up at the bottom instead of disappearing. Rows are scored through
// ComputePoints with the row's stage tier.
//
// Ordering is points descending, then exact results, then correct outcomes,
// then name ascending as the deterministic tie-break. Ranks follow standard
// competition ranking on the points value alone: equal totals share a rank,
// and the next distinct total gets rank = users ahead of it + 1.
func Leaderboard(users []models.User, rows []models.FinishedTip) []models.LeaderboardEntry {
	totals := make(map[string]*models.LeaderboardEntry, len(users))
	for _, u := range users {
		totals[u.ID] = &models.LeaderboardEntry{UserID: u.ID, Name: u.Name}
	}

	for _, r := range rows {
		ent, ok := totals[r.UserID]
		if !ok {
			// Row for a user outside the roster; nothing to credit.
			continue
		}

		ent.Points += ComputePoints(r.TipA, r.TipB, r.ResA, r.ResB, r.Stage)
		ent.Tips++
		if sign(r.TipA-r.TipB) == sign(r.ResA-r.ResB) {
			ent.Winners++
		}
		if r.TipA == r.ResA && r.TipB == r.ResB {
			ent.Exact++
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(totals))
	for _, ent := range totals {
		entries = append(entries, *ent)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Exact != b.Exact {
			return a.Exact > b.Exact
		}
		if a.Winners != b.Winners {
			return a.Winners > b.Winners
		}

		// Case-sensitive byte-wise comparison keeps the order stable
		// across processes and locales.
		return a.Name < b.Name
	})

	// Standard competition ranking over points only: the secondary sort
	// keys order rows inside a tier but never split it.
	rank := 0
	lastPoints := 0
	for i := range entries {
		if i == 0 || entries[i].Points < lastPoints {
			rank = i + 1
			lastPoints = entries[i].Points
		}
		entries[i].Rank = rank
	}

	return entries
}
