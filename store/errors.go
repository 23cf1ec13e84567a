package store

import "errors"

// Authentication and authorization failures. Login failures deliberately
// collapse into the one generic ErrInvalidCredentials so responses never
// reveal whether the username or the password was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrNotAuthenticated   = errors.New("you must be logged in")
	ErrUnauthorized       = errors.New("admin access required")
)

// Missing entities.
var (
	ErrPollNotFound = errors.New("poll not found")
	ErrUserNotFound = errors.New("user not found")
)

// Voting-integrity violations. These are expected, recoverable states,
// not failures.
var (
	ErrAlreadyVoted  = errors.New("you have already voted on this poll")
	ErrPollLocked    = errors.New("this poll is locked")
	ErrPollExpired   = errors.New("this poll has expired")
	ErrInvalidOption = errors.New("invalid option")
)

// Uniqueness conflicts at registration or profile update.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// ValidationError reports a rejected input field. Validation always runs
// before any write, so a validation failure is never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
