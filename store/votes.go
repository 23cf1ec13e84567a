package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Manojmaturi07/voteanalytics/models"
)

// SubmitVote records a vote and returns the updated poll so the new tally
// is visible immediately.
//
// Preconditions are checked in a fixed order, each with its own error:
// authenticated user, poll exists, not already voted, not locked, not
// expired, option exists. The tally increment, the ledger append, and the
// (user, poll) index entry are one transaction: the option-row update
// serializes concurrent votes on the same poll and the ledger's
// (poll_id, user_id) primary key backstops the already-voted check.
func (s *Store) SubmitVote(ctx context.Context, ident models.Identity, pollID string, optionID int) (*models.Poll, error) {
	if !ident.IsUser() {
		return nil, ErrNotAuthenticated
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var deadline time.Time
	var isLocked bool
	err = tx.QueryRowContext(ctx, `SELECT deadline, is_locked FROM poll WHERE id = $1`, pollID).
		Scan(&deadline, &isLocked)
	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	var voted bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2)
	`, pollID, ident.UserID).Scan(&voted)
	if err != nil {
		return nil, fmt.Errorf("failed to check prior vote: %w", err)
	}
	if voted {
		return nil, ErrAlreadyVoted
	}

	if isLocked {
		return nil, ErrPollLocked
	}

	if !deadline.After(timeNow()) {
		// Expiry noticed on a write path: lock eagerly, then reject.
		if _, err := tx.ExecContext(ctx, `
			UPDATE poll SET is_locked = TRUE WHERE id = $1 AND is_locked = FALSE
		`, pollID); err != nil {
			return nil, fmt.Errorf("failed to lock expired poll: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit poll lock: %w", err)
		}
		return nil, ErrPollExpired
	}

	var optionText string
	err = tx.QueryRowContext(ctx, `
		SELECT text FROM option WHERE poll_id = $1 AND id = $2
	`, pollID, optionID).Scan(&optionText)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidOption
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query option: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE option SET votes = votes + 1 WHERE poll_id = $1 AND id = $2
	`, pollID, optionID); err != nil {
		return nil, fmt.Errorf("failed to increment tally: %w", err)
	}

	// voted_at is always server-assigned; clients cannot backdate votes.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (poll_id, user_id, username, name, option_id, option_text, voted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, pollID, ident.UserID, ident.Username, ident.Name, optionID, optionText, timeNow())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("failed to append vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}

	return s.GetPollWithVotes(ctx, pollID)
}

// HasVoted reports whether the caller voted on the poll. Anonymous
// callers get false, never an error.
func (s *Store) HasVoted(ctx context.Context, ident models.Identity, pollID string) (bool, error) {
	if !ident.IsUser() {
		return false, nil
	}
	var voted bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2)
	`, pollID, ident.UserID).Scan(&voted)
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return voted, nil
}

// GetPollWithVotes returns a poll with options and the full ledger.
func (s *Store) GetPollWithVotes(ctx context.Context, pollID string) (*models.Poll, error) {
	poll, err := s.GetPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}
	votes, err := s.pollVotes(ctx, pollID)
	if err != nil {
		return nil, err
	}
	poll.Votes = votes
	return poll, nil
}

// PollVotes returns the ledger for one poll in voting order. Admin only.
func (s *Store) PollVotes(ctx context.Context, ident models.Identity, pollID string) ([]models.Vote, error) {
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if _, err := s.GetPoll(ctx, pollID); err != nil {
		return nil, err
	}
	return s.pollVotes(ctx, pollID)
}

// AllVotes returns every ledger entry across polls in voting order.
// Admin only; feeds the per-voter analytics.
func (s *Store) AllVotes(ctx context.Context, ident models.Identity) ([]models.Vote, error) {
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, username, name, option_id, option_text, voted_at
		FROM vote ORDER BY voted_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	return scanVotes(rows)
}

func (s *Store) pollVotes(ctx context.Context, pollID string) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, username, name, option_id, option_text, voted_at
		FROM vote WHERE poll_id = $1 ORDER BY voted_at
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	return scanVotes(rows)
}

func scanVotes(rows *sql.Rows) ([]models.Vote, error) {
	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.UserID, &v.Username, &v.Name, &v.OptionID, &v.OptionText, &v.VotedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
