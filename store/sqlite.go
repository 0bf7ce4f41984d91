// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tippspiel/models"
)

// SQLStore implements Store on top of the embedded sqlite database.
type SQLStore struct {
	conn *sql.DB
}

func New(conn *sql.DB) *SQLStore {
	return &SQLStore{conn: conn}
}

func (s *SQLStore) GetUserByName(name string) (models.User, error) {
	return s.getUser(`SELECT id, name, token, created_at FROM users WHERE name = ?`, name)
}

func (s *SQLStore) GetUserByToken(token string) (models.User, error) {
	return s.getUser(`SELECT id, name, token, created_at FROM users WHERE token = ?`, token)
}

func (s *SQLStore) getUser(query, arg string) (models.User, error) {
	var u models.User
	var createdAt string
	err := s.conn.QueryRow(query, arg).Scan(&u.ID, &u.Name, &u.Token, &createdAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	u.CreatedAt = parseTimestamp(createdAt)
	return u, nil
}

// CreateUser registers name with the given token. Registration is idempotent
// at the statement level: a concurrent insert of the same name loses the
// conflict and the canonical row (with its original token) is read back.
func (s *SQLStore) CreateUser(name, token string) (models.User, error) {
	id := uuid.NewString()
	_, err := s.conn.Exec(`
		INSERT INTO users (id, name, token, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, id, name, token, formatTimestamp(time.Now()))
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return s.GetUserByName(name)
}

func (s *SQLStore) ListUsers() ([]models.User, error) {
	rows, err := s.conn.Query(`SELECT id, name, token, created_at FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Name, &u.Token, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.CreatedAt = parseTimestamp(createdAt)
		users = append(users, u)
	}

	return users, rows.Err()
}

const matchColumns = `id, team_a, code_a, team_b, code_b, kickoff, stage, res_a, res_b, result_set_at`

func (s *SQLStore) ListMatches() ([]models.Match, error) {
	rows, err := s.conn.Query(`
		SELECT ` + matchColumns + ` FROM matches ORDER BY kickoff ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

func (s *SQLStore) GetMatch(id string) (models.Match, error) {
	row := s.conn.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)

	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return models.Match{}, ErrNotFound
	}
	if err != nil {
		return models.Match{}, err
	}
	return m, nil
}

// SetMatchResult sets or overwrites a full result. Both scores are written in
// one statement, so a result is never half-set.
func (s *SQLStore) SetMatchResult(id string, resA, resB int, at time.Time) error {
	res, err := s.conn.Exec(`
		UPDATE matches SET res_a = ?, res_b = ?, result_set_at = ? WHERE id = ?
	`, resA, resB, formatTimestamp(at), id)
	if err != nil {
		return fmt.Errorf("failed to update result: %w", err)
	}

	return affectedOrNotFound(res)
}

func (s *SQLStore) SetMatchTeams(id, teamA, codeA, teamB, codeB string) error {
	res, err := s.conn.Exec(`
		UPDATE matches SET team_a = ?, code_a = ?, team_b = ?, code_b = ? WHERE id = ?
	`, teamA, codeA, teamB, codeB, id)
	if err != nil {
		return fmt.Errorf("failed to update teams: %w", err)
	}

	return affectedOrNotFound(res)
}

func (s *SQLStore) GetTipsForUser(userID string) ([]models.Tip, error) {
	rows, err := s.conn.Query(`
		SELECT user_id, match_id, score_a, score_b, created_at, updated_at
		FROM tips
		WHERE user_id = ?
		ORDER BY match_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tips: %w", err)
	}
	defer rows.Close()

	var tips []models.Tip
	for rows.Next() {
		var t models.Tip
		var createdAt, updatedAt string
		if err := rows.Scan(&t.UserID, &t.MatchID, &t.ScoreA, &t.ScoreB, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		t.CreatedAt = parseTimestamp(createdAt)
		t.UpdatedAt = parseTimestamp(updatedAt)
		tips = append(tips, t)
	}

	return tips, rows.Err()
}

// UpsertTip writes a tip as one insert-or-update statement, so there is no
// window between an existence check and the write. The (user_id, match_id)
// primary key guarantees at most one row per pair.
func (s *SQLStore) UpsertTip(userID, matchID string, scoreA, scoreB int) error {
	now := formatTimestamp(time.Now())
	_, err := s.conn.Exec(`
		INSERT INTO tips (user_id, match_id, score_a, score_b, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, match_id) DO UPDATE SET
			score_a = excluded.score_a,
			score_b = excluded.score_b,
			updated_at = excluded.updated_at
	`, userID, matchID, scoreA, scoreB, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert tip: %w", err)
	}

	return nil
}

func (s *SQLStore) ListFinishedTips() ([]models.FinishedTip, error) {
	rows, err := s.conn.Query(`
		SELECT t.user_id, m.stage, t.score_a, t.score_b, m.res_a, m.res_b
		FROM tips t
		JOIN matches m ON m.id = t.match_id
		WHERE m.res_a IS NOT NULL AND m.res_b IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query finished tips: %w", err)
	}
	defer rows.Close()

	var finished []models.FinishedTip
	for rows.Next() {
		var f models.FinishedTip
		if err := rows.Scan(&f.UserID, &f.Stage, &f.TipA, &f.TipB, &f.ResA, &f.ResB); err != nil {
			return nil, fmt.Errorf("failed to scan finished tip: %w", err)
		}
		finished = append(finished, f)
	}

	return finished, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (models.Match, error) {
	var m models.Match
	var kickoff string
	var resA, resB sql.NullInt64
	var resultSetAt sql.NullString

	err := row.Scan(&m.ID, &m.TeamA, &m.CodeA, &m.TeamB, &m.CodeB,
		&kickoff, &m.Stage, &resA, &resB, &resultSetAt)
	if err == sql.ErrNoRows {
		return models.Match{}, err
	}
	if err != nil {
		return models.Match{}, fmt.Errorf("failed to scan match: %w", err)
	}

	m.Kickoff = parseTimestamp(kickoff)
	if resA.Valid && resB.Valid {
		a, b := int(resA.Int64), int(resB.Int64)
		m.ResA, m.ResB = &a, &b
	}
	if resultSetAt.Valid {
		at := parseTimestamp(resultSetAt.String)
		m.ResultSetAt = &at
	}

	return m, nil
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Timestamps are stored as RFC 3339 UTC strings.

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
