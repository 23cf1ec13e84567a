package store

import (
	"context"
	"fmt"

	"github.com/Manojmaturi07/voteanalytics/models"
)

// AddBookmark marks a poll as bookmarked for the caller. Bookmarking the
// same poll twice is a no-op.
func (s *Store) AddBookmark(ctx context.Context, ident models.Identity, pollID string) error {
	if ident.IsAnonymous() {
		return ErrNotAuthenticated
	}
	if _, err := s.GetPoll(ctx, pollID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmark (user_id, poll_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, poll_id) DO NOTHING
	`, ident.UserID, pollID, timeNow())
	if err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark drops a bookmark. Removing an absent bookmark is a no-op.
func (s *Store) RemoveBookmark(ctx context.Context, ident models.Identity, pollID string) error {
	if ident.IsAnonymous() {
		return ErrNotAuthenticated
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM bookmark WHERE user_id = $1 AND poll_id = $2
	`, ident.UserID, pollID)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

// ListBookmarks returns the caller's bookmarked polls, most recently
// bookmarked first.
func (s *Store) ListBookmarks(ctx context.Context, ident models.Identity) ([]models.Poll, error) {
	if ident.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.question, p.deadline, p.is_locked, p.is_published, p.category, p.tags, p.created_at
		FROM poll p
		JOIN bookmark b ON b.poll_id = p.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		poll, err := scanPollRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range polls {
		if err := s.lockIfExpired(ctx, &polls[i]); err != nil {
			return nil, err
		}
		if err := s.loadOptions(ctx, &polls[i]); err != nil {
			return nil, err
		}
	}
	return polls, nil
}
