/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, email, password, name
  - LoginRequest: username, password
  - CreatePollRequest: question, options, deadline, category, tags
  - UpdatePollRequest: partial poll edit (nil fields untouched)
  - SubmitVoteRequest: option_id

# Response Types

Types for JSON responses:

  - LoginResponse: token, user
  - HasVotedResponse: has_voted
  - PopularPollsResponse, CategoryHistogramResponse, VotersResponse
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account record (password hash never serialized)
  - Poll: question, options, deadline, lock/publish flags, vote ledger
  - Option: 1-based position-derived id with a running tally
  - Vote: immutable ledger entry with voter and option snapshots
  - Comment: per-poll user comment
  - Identity: the caller's resolved role context for one request

# Constants

Roles:

	RoleUser  = "user"
	RoleAdmin = "admin"

Polls without a category fall into the CategoryNone ("Uncategorized")
histogram bucket.
*/
package models
