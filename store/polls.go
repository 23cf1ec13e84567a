package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Manojmaturi07/voteanalytics/models"
)

const pollColumns = "id, question, deadline, is_locked, is_published, category, tags, created_at"

func scanPollRow(scan func(dest ...any) error) (models.Poll, error) {
	var p models.Poll
	var tags string
	err := scan(&p.ID, &p.Question, &p.Deadline, &p.IsLocked, &p.IsPublished, &p.Category, &tags, &p.CreatedAt)
	if err != nil {
		return models.Poll{}, err
	}
	p.Tags = decodeTags(tags)
	return p, nil
}

// CreatePoll creates an unpublished, unlocked poll. Admin only. Option
// ids are assigned sequentially starting at 1 with zeroed tallies.
func (s *Store) CreatePoll(ctx context.Context, ident models.Identity, req models.CreatePollRequest) (*models.Poll, error) {
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if err := validateQuestion(req.Question); err != nil {
		return nil, err
	}
	if err := validateOptions(req.Options); err != nil {
		return nil, err
	}
	if err := validateDeadline(req.Deadline); err != nil {
		return nil, err
	}

	poll := models.Poll{
		ID:          uuid.NewString(),
		Question:    strings.TrimSpace(req.Question),
		Deadline:    req.Deadline,
		IsLocked:    false,
		IsPublished: false,
		Category:    strings.TrimSpace(req.Category),
		Tags:        req.Tags,
		CreatedAt:   timeNow(),
	}
	if poll.Tags == nil {
		poll.Tags = []string{}
	}
	for i, text := range req.Options {
		poll.Options = append(poll.Options, models.Option{ID: i + 1, Text: strings.TrimSpace(text)})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, question, deadline, is_locked, is_published, category, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, poll.ID, poll.Question, poll.Deadline, poll.IsLocked, poll.IsPublished, poll.Category, encodeTags(poll.Tags), poll.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, opt := range poll.Options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO option (poll_id, id, text, votes) VALUES ($1, $2, $3, 0)
		`, poll.ID, opt.ID, opt.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit poll: %w", err)
	}

	return &poll, nil
}

// GetPoll returns a poll with its options. Reading a poll whose deadline
// has passed locks it as a side effect (lazy expiry).
func (s *Store) GetPoll(ctx context.Context, id string) (*models.Poll, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM poll WHERE id = $1`, id)
	poll, err := scanPollRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	if err := s.lockIfExpired(ctx, &poll); err != nil {
		return nil, err
	}
	if err := s.loadOptions(ctx, &poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

// ListPolls returns polls newest-first. Admins see everything; everyone
// else sees published polls only. Expired polls are locked on the way out.
func (s *Store) ListPolls(ctx context.Context, ident models.Identity) ([]models.Poll, error) {
	query := `SELECT ` + pollColumns + ` FROM poll`
	if !ident.IsAdmin() {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
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

// UpdatePoll applies a partial edit. Admin only. A rewritten option list
// is renumbered 1..n and tallies carry over by option id: since ids are
// position-derived, the option at position i inherits the count the old
// option at position i had. Reordering options therefore reattaches
// tallies; edit texts in place.
func (s *Store) UpdatePoll(ctx context.Context, ident models.Identity, id string, req models.UpdatePollRequest) (*models.Poll, error) {
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}

	poll, err := s.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		if err := validateQuestion(*req.Question); err != nil {
			return nil, err
		}
		poll.Question = strings.TrimSpace(*req.Question)
	}
	if req.Deadline != nil {
		if err := validateDeadline(*req.Deadline); err != nil {
			return nil, err
		}
		// A later deadline never unlocks: is_locked is monotonic.
		poll.Deadline = *req.Deadline
	}
	if req.Category != nil {
		poll.Category = strings.TrimSpace(*req.Category)
	}
	if req.Tags != nil {
		poll.Tags = req.Tags
	}

	rewriteOptions := req.Options != nil
	if rewriteOptions {
		if err := validateOptions(req.Options); err != nil {
			return nil, err
		}
		old := make(map[int]int, len(poll.Options))
		for _, opt := range poll.Options {
			old[opt.ID] = opt.Votes
		}
		newOptions := make([]models.Option, 0, len(req.Options))
		for i, text := range req.Options {
			newOptions = append(newOptions, models.Option{
				ID:    i + 1,
				Text:  strings.TrimSpace(text),
				Votes: old[i+1],
			})
		}
		poll.Options = newOptions
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE poll SET question = $1, deadline = $2, category = $3, tags = $4 WHERE id = $5
	`, poll.Question, poll.Deadline, poll.Category, encodeTags(poll.Tags), poll.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update poll: %w", err)
	}

	if rewriteOptions {
		if _, err := tx.ExecContext(ctx, `DELETE FROM option WHERE poll_id = $1`, poll.ID); err != nil {
			return nil, fmt.Errorf("failed to clear options: %w", err)
		}
		for _, opt := range poll.Options {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO option (poll_id, id, text, votes) VALUES ($1, $2, $3, $4)
			`, poll.ID, opt.ID, opt.Text, opt.Votes)
			if err != nil {
				return nil, fmt.Errorf("failed to insert option: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit poll update: %w", err)
	}

	return poll, nil
}

// SetPublished flips the admin visibility gate. Admin only.
func (s *Store) SetPublished(ctx context.Context, ident models.Identity, id string, published bool) (*models.Poll, error) {
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}

	res, err := s.db.ExecContext(ctx, `UPDATE poll SET is_published = $1 WHERE id = $2`, published, id)
	if err != nil {
		return nil, fmt.Errorf("failed to publish poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to publish poll: %w", err)
	}
	if n == 0 {
		return nil, ErrPollNotFound
	}
	return s.GetPoll(ctx, id)
}

// DeletePoll hard-deletes a poll. Admin only. Options, ledger entries,
// bookmarks, and comments go with it via ON DELETE CASCADE.
func (s *Store) DeletePoll(ctx context.Context, ident models.Identity, id string) error {
	if !ident.IsAdmin() {
		return ErrUnauthorized
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	if n == 0 {
		return ErrPollNotFound
	}
	return nil
}

// lockIfExpired flips is_locked once the deadline has passed. The
// conditional WHERE keeps the flag monotonic under concurrent readers.
func (s *Store) lockIfExpired(ctx context.Context, poll *models.Poll) error {
	if poll.IsLocked || poll.Deadline.After(timeNow()) {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE poll SET is_locked = TRUE WHERE id = $1 AND is_locked = FALSE
	`, poll.ID)
	if err != nil {
		return fmt.Errorf("failed to lock expired poll: %w", err)
	}
	poll.IsLocked = true
	return nil
}

func (s *Store) loadOptions(ctx context.Context, poll *models.Poll) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, votes FROM option WHERE poll_id = $1 ORDER BY id
	`, poll.ID)
	if err != nil {
		return fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Text, &opt.Votes); err != nil {
			return fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	poll.Options = options
	return rows.Err()
}
