package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. Postgres is used in
// production; the pure-Go SQLite driver serves development and tests.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case "postgres":
		conn, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil

	case "sqlite":
		conn, err := sql.Open("sqlite", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite handles one writer at a time; a single pooled connection
		// also keeps session pragmas and in-memory databases stable.
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to configure sqlite: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}
}
