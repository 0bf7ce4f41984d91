// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package scoring computes tip points and the leaderboard.
package scoring

import "tippspiel/models"

// tier holds the point values for one scoring tier.
type tier struct {
	outcome int // correct win/draw/loss classification
	margin  int // exact goal difference, on top of a correct outcome
	goal    int // per correctly predicted team score
}

var (
	groupTier    = tier{outcome: 5, margin: 3, goal: 1}
	knockoutTier = tier{outcome: 10, margin: 6, goal: 2}
)

// tierFor maps a stage value to its scoring tier. Only "group" scores as
// group; any other stage label is knockout.
func tierFor(stage string) tier {
	if stage == models.StageGroup {
		return groupTier
	}
	return knockoutTier
}

// ComputePoints scores a single prediction against a final result.
//
// A correct outcome (win/draw/loss, taken from the sign of the goal
// difference) earns the tier's outcome bonus, plus the margin bonus when the
// goal difference is exactly right. Each correctly predicted team score earns
// the goal bonus independently of the outcome. Points are never negative;
// an exact scoreline earns outcome + margin + twice the goal bonus.
//
// This is the only scoring implementation in the codebase. The leaderboard
// aggregation calls it per row rather than carrying its own arithmetic.
func ComputePoints(tipA, tipB, resA, resB int, stage string) int {
	t := tierFor(stage)

	pts := 0
	tipDelta := tipA - tipB
	resDelta := resA - resB

	if sign(tipDelta) == sign(resDelta) {
		pts += t.outcome
		if abs(tipDelta) == abs(resDelta) {
			pts += t.margin
		}
	}

	if tipA == resA {
		pts += t.goal
	}
	if tipB == resB {
		pts += t.goal
	}

	return pts
}

// sign classifies a goal difference into an outcome: 1 home win, 0 draw,
// -1 away win.
func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
