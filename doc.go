/*
Package main provides the entry point for the VoteAnalytics API server.

VoteAnalytics is a polling service: admins create and publish polls with
a deadline, registered users cast exactly one vote per poll, and results
are served both as aggregate tallies and as a per-voter ledger.

# Starting the Server

The server reads configuration from environment variables (a local .env
file is honored in development) or CLI flags:

	DATABASE_URL=./voteanalytics.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3330 -t postgres -d "postgres://..." -jwt-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string or SQLite path
  - JWT_SECRET (-jwt-secret): session token signing secret

Optional settings:

  - PORT (-p): server port (default: 3330)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_TTL (-session-ttl): session token lifetime (default: 1h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, users, polls, voting, analytics)
  - router: Route definitions using Go 1.22+ routing
  - middleware: identity resolution, role gating, CORS, logging, JSON helpers
  - store: domain operations and invariants on top of database/sql
  - analytics: pure aggregation over polls and votes
  - models: domain and request/response types
  - auth: password hashing and session tokens
  - db: connection setup and schema creation
  - cliparse: configuration parsing
  - notify: best-effort new-poll notifications

See package documentation for each component.
*/
package main
