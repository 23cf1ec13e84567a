/*
Package handlers contains HTTP request handlers for the VoteAnalytics API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: registration, login (rate-limited), logout, current user
  - UserHandler: profile update and admin user management
  - PollHandler: poll lifecycle (create, update, publish, delete)
  - VotingHandler: vote submission, has-voted, results, ledger details
  - AnalyticsHandler: popular polls, category histogram, per-voter view
  - BookmarkHandler: per-user bookmarked polls
  - CommentHandler: per-poll comments

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Identity

Role gating happens twice: the router wraps admin/user routes in
middleware.RequireAdmin / RequireUser, and the store re-checks the
Identity passed into every operation so nothing relies on routing alone.

# Voting Flow

	POST /api/polls/{id}/vote       → Vote (user role required)
	GET  /api/polls/{id}/has-voted  → HasVoted (false for anonymous)
	GET  /api/polls/{id}/results    → Results (tallies plus ledger)
	GET  /api/polls/{id}/votes      → VotingDetails (admin)

Vote preconditions and their error responses come from the store; see
package store for the precise ordering.

# Error Mapping

storeError translates domain sentinel errors into HTTP statuses:
validation → 400, authentication → 401, role/disabled → 403, missing →
404, integrity and uniqueness conflicts → 409. Unknown errors are
logged and surface as 500 without internal detail.
*/
package handlers
