/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses lib/pq; "sqlite" uses the pure-Go modernc.org/sqlite
driver with foreign keys enabled and a single pooled connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Accounts with role, active flag, and case-insensitive unique
    username/email (expression indexes on LOWER(...))
  - poll: Question, deadline, lock/publish flags, category, tags
  - option: Per-poll options with position-derived ids and tallies
  - vote: Append-only ledger; PRIMARY KEY (poll_id, user_id) enforces
    at most one vote per user per poll
  - bookmark: Per-user bookmarked polls
  - comment: Per-poll user comments

All DDL stays within the dialect shared by PostgreSQL and SQLite, so the
same schema runs unchanged against either backend.
*/
package db
