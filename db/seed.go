// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

type fixture struct {
	id      string
	teamA   string
	codeA   string
	teamB   string
	codeB   string
	kickoff string
	stage   string
}

// Seed loads the tournament fixture catalog into an empty matches table.
// The whole load runs in one transaction; a non-empty table is left alone,
// so restarting the server never duplicates or resets fixtures.
func Seed(conn *sql.DB) error {
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM matches`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count matches: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO matches (id, team_a, code_a, team_b, code_b, kickoff, stage)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range fixtures {
		kickoff, err := time.Parse(time.RFC3339, f.kickoff)
		if err != nil {
			return fmt.Errorf("bad kickoff for fixture %s: %w", f.id, err)
		}
		if _, err := stmt.Exec(f.id, f.teamA, f.codeA, f.teamB, f.codeB,
			kickoff.UTC().Format(time.RFC3339), f.stage); err != nil {
			return fmt.Errorf("failed to insert fixture %s: %w", f.id, err)
		}
	}

	return tx.Commit()
}

// fixtures is the 2026 tournament catalog: twelve groups of six matches plus
// the full knockout bracket. Knockout pairings are seeded as placeholders and
// filled in by the admin team-edit endpoint once the groups finish.
var fixtures = []fixture{
	// Group A
	{"A1", "Mexiko", "mx", "Südafrika", "za", "2026-06-11T21:00:00+02:00", "group"},
	{"A2", "Südkorea", "kr", "Playoff-A", "pa", "2026-06-12T03:00:00+02:00", "group"},
	{"A3", "Mexiko", "mx", "Südkorea", "kr", "2026-06-16T21:00:00+02:00", "group"},
	{"A4", "Südafrika", "za", "Playoff-A", "pa", "2026-06-16T18:00:00+02:00", "group"},
	{"A5", "Mexiko", "mx", "Playoff-A", "pa", "2026-06-21T21:00:00+02:00", "group"},
	{"A6", "Südafrika", "za", "Südkorea", "kr", "2026-06-21T21:00:00+02:00", "group"},

	// Group B
	{"B1", "Deutschland", "de", "Japan", "jp", "2026-06-12T18:00:00+02:00", "group"},
	{"B2", "Kanada", "ca", "Playoff-B", "pb", "2026-06-12T21:00:00+02:00", "group"},
	{"B3", "Deutschland", "de", "Kanada", "ca", "2026-06-17T18:00:00+02:00", "group"},
	{"B4", "Japan", "jp", "Playoff-B", "pb", "2026-06-17T21:00:00+02:00", "group"},
	{"B5", "Deutschland", "de", "Playoff-B", "pb", "2026-06-22T18:00:00+02:00", "group"},
	{"B6", "Japan", "jp", "Kanada", "ca", "2026-06-22T18:00:00+02:00", "group"},

	// Group C
	{"C1", "Brasilien", "br", "Schottland", "gb", "2026-06-13T18:00:00+02:00", "group"},
	{"C2", "Marokko", "ma", "Playoff-C", "pc", "2026-06-13T21:00:00+02:00", "group"},
	{"C3", "Brasilien", "br", "Marokko", "ma", "2026-06-18T21:00:00+02:00", "group"},
	{"C4", "Schottland", "gb", "Playoff-C", "pc", "2026-06-18T18:00:00+02:00", "group"},
	{"C5", "Brasilien", "br", "Playoff-C", "pc", "2026-06-23T21:00:00+02:00", "group"},
	{"C6", "Schottland", "gb", "Marokko", "ma", "2026-06-23T21:00:00+02:00", "group"},

	// Group D
	{"D1", "Frankreich", "fr", "Senegal", "sn", "2026-06-14T18:00:00+02:00", "group"},
	{"D2", "Norwegen", "no", "Playoff-D", "pd", "2026-06-14T21:00:00+02:00", "group"},
	{"D3", "Frankreich", "fr", "Norwegen", "no", "2026-06-19T18:00:00+02:00", "group"},
	{"D4", "Senegal", "sn", "Playoff-D", "pd", "2026-06-19T21:00:00+02:00", "group"},
	{"D5", "Frankreich", "fr", "Playoff-D", "pd", "2026-06-24T18:00:00+02:00", "group"},
	{"D6", "Senegal", "sn", "Norwegen", "no", "2026-06-24T18:00:00+02:00", "group"},

	// Group E
	{"E1", "Spanien", "es", "Uruguay", "uy", "2026-06-15T18:00:00+02:00", "group"},
	{"E2", "Saudi-Arabien", "sa", "Tunesien", "tn", "2026-06-15T21:00:00+02:00", "group"},
	{"E3", "Spanien", "es", "Saudi-Arabien", "sa", "2026-06-20T18:00:00+02:00", "group"},
	{"E4", "Uruguay", "uy", "Tunesien", "tn", "2026-06-20T21:00:00+02:00", "group"},
	{"E5", "Spanien", "es", "Tunesien", "tn", "2026-06-25T18:00:00+02:00", "group"},
	{"E6", "Uruguay", "uy", "Saudi-Arabien", "sa", "2026-06-25T18:00:00+02:00", "group"},

	// Group F
	{"F1", "England", "gb", "Ghana", "gh", "2026-06-15T21:00:00+02:00", "group"},
	{"F2", "Kolumbien", "co", "Japan", "jp", "2026-06-15T18:00:00+02:00", "group"},
	{"F3", "England", "gb", "Kolumbien", "co", "2026-06-20T21:00:00+02:00", "group"},
	{"F4", "Ghana", "gh", "Japan", "jp", "2026-06-20T18:00:00+02:00", "group"},
	{"F5", "England", "gb", "Japan", "jp", "2026-06-25T21:00:00+02:00", "group"},
	{"F6", "Ghana", "gh", "Kolumbien", "co", "2026-06-25T21:00:00+02:00", "group"},

	// Group G
	{"G1", "Portugal", "pt", "Iran", "ir", "2026-06-16T18:00:00+02:00", "group"},
	{"G2", "USA", "us", "Playoff-B", "pb", "2026-06-16T21:00:00+02:00", "group"},
	{"G3", "Portugal", "pt", "USA", "us", "2026-06-21T18:00:00+02:00", "group"},
	{"G4", "Iran", "ir", "Playoff-B", "pb", "2026-06-21T21:00:00+02:00", "group"},
	{"G5", "Portugal", "pt", "Playoff-B", "pb", "2026-06-26T18:00:00+02:00", "group"},
	{"G6", "Iran", "ir", "USA", "us", "2026-06-26T18:00:00+02:00", "group"},

	// Group H
	{"H1", "Argentinien", "ar", "Ägypten", "eg", "2026-06-16T21:00:00+02:00", "group"},
	{"H2", "Schweiz", "ch", "Playoff-C", "pc", "2026-06-17T18:00:00+02:00", "group"},
	{"H3", "Argentinien", "ar", "Schweiz", "ch", "2026-06-22T21:00:00+02:00", "group"},
	{"H4", "Ägypten", "eg", "Playoff-C", "pc", "2026-06-22T18:00:00+02:00", "group"},
	{"H5", "Argentinien", "ar", "Playoff-C", "pc", "2026-06-27T21:00:00+02:00", "group"},
	{"H6", "Ägypten", "eg", "Schweiz", "ch", "2026-06-27T21:00:00+02:00", "group"},

	// Group I
	{"I1", "Belgien", "be", "Kamerun", "cm", "2026-06-17T21:00:00+02:00", "group"},
	{"I2", "Japan", "jp", "Playoff-D", "pd", "2026-06-17T18:00:00+02:00", "group"},
	{"I3", "Belgien", "be", "Japan", "jp", "2026-06-22T18:00:00+02:00", "group"},
	{"I4", "Kamerun", "cm", "Playoff-D", "pd", "2026-06-22T21:00:00+02:00", "group"},
	{"I5", "Belgien", "be", "Playoff-D", "pd", "2026-06-27T18:00:00+02:00", "group"},
	{"I6", "Kamerun", "cm", "Japan", "jp", "2026-06-27T18:00:00+02:00", "group"},

	// Group J
	{"J1", "Niederlande", "nl", "Südkorea", "kr", "2026-06-18T18:00:00+02:00", "group"},
	{"J2", "Chile", "cl", "Playoff-A", "pa", "2026-06-18T21:00:00+02:00", "group"},
	{"J3", "Niederlande", "nl", "Chile", "cl", "2026-06-23T18:00:00+02:00", "group"},
	{"J4", "Südkorea", "kr", "Playoff-A", "pa", "2026-06-23T21:00:00+02:00", "group"},
	{"J5", "Niederlande", "nl", "Playoff-A", "pa", "2026-06-28T18:00:00+02:00", "group"},
	{"J6", "Südkorea", "kr", "Chile", "cl", "2026-06-28T18:00:00+02:00", "group"},

	// Group K
	{"K1", "Italien", "it", "Nigeria", "ng", "2026-06-18T21:00:00+02:00", "group"},
	{"K2", "Peru", "pe", "Playoff-C", "pc", "2026-06-19T18:00:00+02:00", "group"},
	{"K3", "Italien", "it", "Peru", "pe", "2026-06-24T21:00:00+02:00", "group"},
	{"K4", "Nigeria", "ng", "Playoff-C", "pc", "2026-06-24T18:00:00+02:00", "group"},
	{"K5", "Italien", "it", "Playoff-C", "pc", "2026-06-29T21:00:00+02:00", "group"},
	{"K6", "Nigeria", "ng", "Peru", "pe", "2026-06-29T21:00:00+02:00", "group"},

	// Group L
	{"L1", "Kroatien", "hr", "Australien", "au", "2026-06-19T21:00:00+02:00", "group"},
	{"L2", "Dänemark", "dk", "Playoff-D", "pd", "2026-06-19T18:00:00+02:00", "group"},
	{"L3", "Kroatien", "hr", "Dänemark", "dk", "2026-06-25T21:00:00+02:00", "group"},
	{"L4", "Australien", "au", "Playoff-D", "pd", "2026-06-25T18:00:00+02:00", "group"},
	{"L5", "Kroatien", "hr", "Playoff-D", "pd", "2026-06-30T21:00:00+02:00", "group"},
	{"L6", "Australien", "au", "Dänemark", "dk", "2026-06-30T21:00:00+02:00", "group"},

	// Round of 32
	{"r32_1", "tbd", "", "tbd", "", "2026-06-28T18:00:00+02:00", "round_of_32"},
	{"r32_2", "tbd", "", "tbd", "", "2026-06-28T21:00:00+02:00", "round_of_32"},
	{"r32_3", "tbd", "", "tbd", "", "2026-06-29T18:00:00+02:00", "round_of_32"},
	{"r32_4", "tbd", "", "tbd", "", "2026-06-29T21:00:00+02:00", "round_of_32"},
	{"r32_5", "tbd", "", "tbd", "", "2026-06-30T15:00:00+02:00", "round_of_32"},
	{"r32_6", "tbd", "", "tbd", "", "2026-06-30T18:00:00+02:00", "round_of_32"},
	{"r32_7", "tbd", "", "tbd", "", "2026-06-30T21:00:00+02:00", "round_of_32"},
	{"r32_8", "tbd", "", "tbd", "", "2026-07-01T15:00:00+02:00", "round_of_32"},
	{"r32_9", "tbd", "", "tbd", "", "2026-07-01T18:00:00+02:00", "round_of_32"},
	{"r32_10", "tbd", "", "tbd", "", "2026-07-01T21:00:00+02:00", "round_of_32"},
	{"r32_11", "tbd", "", "tbd", "", "2026-07-02T15:00:00+02:00", "round_of_32"},
	{"r32_12", "tbd", "", "tbd", "", "2026-07-02T18:00:00+02:00", "round_of_32"},
	{"r32_13", "tbd", "", "tbd", "", "2026-07-02T21:00:00+02:00", "round_of_32"},
	{"r32_14", "tbd", "", "tbd", "", "2026-07-03T15:00:00+02:00", "round_of_32"},
	{"r32_15", "tbd", "", "tbd", "", "2026-07-03T18:00:00+02:00", "round_of_32"},
	{"r32_16", "tbd", "", "tbd", "", "2026-07-03T21:00:00+02:00", "round_of_32"},

	// Round of 16
	{"r16_1", "tbd", "", "tbd", "", "2026-07-04T18:00:00+02:00", "round_of_16"},
	{"r16_2", "tbd", "", "tbd", "", "2026-07-04T21:00:00+02:00", "round_of_16"},
	{"r16_3", "tbd", "", "tbd", "", "2026-07-05T18:00:00+02:00", "round_of_16"},
	{"r16_4", "tbd", "", "tbd", "", "2026-07-05T21:00:00+02:00", "round_of_16"},
	{"r16_5", "tbd", "", "tbd", "", "2026-07-06T18:00:00+02:00", "round_of_16"},
	{"r16_6", "tbd", "", "tbd", "", "2026-07-06T21:00:00+02:00", "round_of_16"},
	{"r16_7", "tbd", "", "tbd", "", "2026-07-07T18:00:00+02:00", "round_of_16"},
	{"r16_8", "tbd", "", "tbd", "", "2026-07-07T21:00:00+02:00", "round_of_16"},

	// Quarterfinals
	{"qf_1", "tbd", "", "tbd", "", "2026-07-09T18:00:00+02:00", "quarterfinal"},
	{"qf_2", "tbd", "", "tbd", "", "2026-07-09T21:00:00+02:00", "quarterfinal"},
	{"qf_3", "tbd", "", "tbd", "", "2026-07-10T18:00:00+02:00", "quarterfinal"},
	{"qf_4", "tbd", "", "tbd", "", "2026-07-10T21:00:00+02:00", "quarterfinal"},

	// Semifinals
	{"sf_1", "tbd", "", "tbd", "", "2026-07-14T21:00:00+02:00", "semifinal"},
	{"sf_2", "tbd", "", "tbd", "", "2026-07-15T21:00:00+02:00", "semifinal"},

	// Finals
	{"third_place", "tbd", "", "tbd", "", "2026-07-18T18:00:00+02:00", "third_place"},
	{"final", "tbd", "", "tbd", "", "2026-07-19T21:00:00+02:00", "final"},
}
