// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens the sqlite database at path with WAL journaling, enforced
// foreign keys and a busy timeout, and verifies the connection.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    token TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_token ON users(token);

-- Matches
-- stage is free-form on purpose: scoring only distinguishes 'group' from
-- everything else, and the knockout seeds carry their round name.
CREATE TABLE IF NOT EXISTS matches (
    id TEXT PRIMARY KEY,
    team_a TEXT NOT NULL,
    code_a TEXT NOT NULL,
    team_b TEXT NOT NULL,
    code_b TEXT NOT NULL,
    kickoff TEXT NOT NULL,
    stage TEXT NOT NULL,
    res_a INTEGER,
    res_b INTEGER,
    result_set_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_matches_kickoff ON matches(kickoff);

-- Tips
CREATE TABLE IF NOT EXISTS tips (
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
    score_a INTEGER NOT NULL,
    score_b INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (user_id, match_id)
);

CREATE INDEX IF NOT EXISTS idx_tips_match_id ON tips(match_id);
`
