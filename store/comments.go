package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Manojmaturi07/voteanalytics/models"
)

// AddComment posts a comment on a poll as the authenticated caller.
func (s *Store) AddComment(ctx context.Context, ident models.Identity, pollID, body string) (models.Comment, error) {
	if ident.IsAnonymous() {
		return models.Comment{}, ErrNotAuthenticated
	}
	if err := validateCommentBody(body); err != nil {
		return models.Comment{}, err
	}
	if _, err := s.GetPoll(ctx, pollID); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		PollID:    pollID,
		UserID:    ident.UserID,
		Username:  ident.Username,
		Body:      strings.TrimSpace(body),
		CreatedAt: timeNow(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comment (id, poll_id, user_id, username, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.PollID, comment.UserID, comment.Username, comment.Body, comment.CreatedAt)
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a poll's comments oldest-first.
func (s *Store) ListComments(ctx context.Context, pollID string) ([]models.Comment, error) {
	if _, err := s.GetPoll(ctx, pollID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, user_id, username, body, created_at
		FROM comment WHERE poll_id = $1 ORDER BY created_at
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.PollID, &c.UserID, &c.Username, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
