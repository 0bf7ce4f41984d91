// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabasePath: sqlite file path (default: tippspiel.sqlite3)
  - AdminKey: Secret for the admin endpoints (required)
  - StaticDir: Frontend directory to host (optional)

# CLI Flags

	-p          Server port
	-d          Database path
	-s          Static directory
	-admin-key  Admin secret

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_PATH → -d
	STATIC_DIR    → -s
	ADMIN_KEY     → -admin-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if ADMIN_KEY is missing. There is no
default admin key.
*/
package cliparse
