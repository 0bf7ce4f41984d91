// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database setup: connection, schema, and fixture seeding.

# Opening

Open configures the sqlite connection with WAL mode, foreign keys, and a
busy timeout:

	conn, err := db.Open("tippspiel.sqlite3")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Registered players and their bearer tokens
  - matches: The fixture catalog with optional results
  - tips: One tip per player per match

# Relationships

	users   1──* tips
	matches 1──* tips

Both foreign keys use ON DELETE CASCADE. (user_id, match_id) is the
primary key of tips, so overwriting a tip never creates a second row.

# Seeding

Seed loads the 2026 tournament catalog (72 group fixtures plus the full
knockout bracket) into an empty matches table. A populated table is left
alone, so restarting the server never duplicates or resets fixtures.

# Indexes

Performance indexes on:

  - users.token
  - matches.kickoff
  - tips.match_id
*/
package db
