package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Manojmaturi07/voteanalytics/auth"
	"github.com/Manojmaturi07/voteanalytics/models"
)

const userColumns = "id, username, email, name, password_hash, role, is_active, created_at"

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	return u, err
}

// Register creates a new account with the given role. Username and email
// are unique case-insensitively across all users.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest, role string) (models.User, error) {
	if err := validateRegistration(req); err != nil {
		return models.User{}, err
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.User{}, &ValidationError{Field: "role", Reason: "invalid role"}
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	var taken bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`, username).Scan(&taken)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email).Scan(&taken)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    timeNow(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, name, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Username, user.Email, user.Name, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt)
	if err != nil {
		// Backstop for a concurrent registration racing past the checks above.
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials and returns the account. A missing
// username and a wrong password produce the same ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)
	`, strings.TrimSpace(username))

	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, ErrAccountDisabled
	}

	return user, nil
}

// GetUser returns a single account by ID.
func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the caller's own name and/or email. Empty fields
// are left unchanged.
func (s *Store) UpdateProfile(ctx context.Context, ident models.Identity, req models.UpdateProfileRequest) (models.User, error) {
	if ident.IsAnonymous() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.GetUser(ctx, ident.UserID)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != "" {
		if err := validateName(req.Name); err != nil {
			return models.User{}, err
		}
		user.Name = strings.TrimSpace(req.Name)
	}

	if req.Email != "" && !strings.EqualFold(req.Email, user.Email) {
		if err := validateEmail(req.Email); err != nil {
			return models.User{}, err
		}
		var taken bool
		err := s.db.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) AND id <> $2)
		`, req.Email, user.ID).Scan(&taken)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return models.User{}, ErrEmailTaken
		}
		user.Email = strings.TrimSpace(req.Email)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE users SET name = $1, email = $2 WHERE id = $3
	`, user.Name, user.Email, user.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// ListUsers returns all accounts. Admin only.
func (s *Store) ListUsers(ctx context.Context, ident models.Identity) ([]models.User, error) {
	if !ident.IsAdmin() {
		return nil, ErrUnauthorized
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ToggleUserStatus flips an account's active flag. Admin only. Disabled
// accounts fail login with ErrAccountDisabled; existing votes remain.
func (s *Store) ToggleUserStatus(ctx context.Context, ident models.Identity, userID string) (models.User, error) {
	if !ident.IsAdmin() {
		return models.User{}, ErrUnauthorized
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user.IsActive = !user.IsActive
	_, err = s.db.ExecContext(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, user.IsActive, user.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to toggle user status: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account. Admin only. The user's ledger entries
// are deliberately kept: tallies must not change when a voter leaves.
func (s *Store) DeleteUser(ctx context.Context, ident models.Identity, userID string) error {
	if !ident.IsAdmin() {
		return ErrUnauthorized
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
