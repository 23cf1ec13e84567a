package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Manojmaturi07/voteanalytics/models"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return &ValidationError{Field: "username", Reason: "username is required"}
	}
	if len(username) < 3 {
		return &ValidationError{Field: "username", Reason: "username must be at least 3 characters long"}
	}
	if len(username) > 30 {
		return &ValidationError{Field: "username", Reason: "username must be less than 30 characters"}
	}
	if !usernameRe.MatchString(username) {
		return &ValidationError{Field: "username", Reason: "username can only contain letters, numbers, underscores, and hyphens"}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	if len(email) > 255 {
		return &ValidationError{Field: "email", Reason: "email address is too long"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "invalid email address"}
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Reason: "password is required"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Reason: "password must be at least 6 characters long"}
	}
	if len(password) > 128 {
		return &ValidationError{Field: "password", Reason: "password is too long"}
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if len(name) < 2 {
		return &ValidationError{Field: "name", Reason: "name must be at least 2 characters long"}
	}
	if len(name) > 100 {
		return &ValidationError{Field: "name", Reason: "name must be less than 100 characters"}
	}
	if !nameRe.MatchString(name) {
		return &ValidationError{Field: "name", Reason: "name can only contain letters, spaces, hyphens, and apostrophes"}
	}
	return nil
}

func validateQuestion(question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return &ValidationError{Field: "question", Reason: "poll question is required"}
	}
	if len(question) < 5 {
		return &ValidationError{Field: "question", Reason: "poll question must be at least 5 characters long"}
	}
	if len(question) > 500 {
		return &ValidationError{Field: "question", Reason: "poll question must be less than 500 characters"}
	}
	return nil
}

const (
	minOptions = 2
	maxOptions = 10
)

func validateOptions(options []string) error {
	if len(options) < minOptions {
		return &ValidationError{Field: "options", Reason: fmt.Sprintf("at least %d options are required", minOptions)}
	}
	if len(options) > maxOptions {
		return &ValidationError{Field: "options", Reason: fmt.Sprintf("maximum %d options allowed", maxOptions)}
	}

	seen := make(map[string]bool, len(options))
	for i, opt := range options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return &ValidationError{Field: "options", Reason: fmt.Sprintf("option %d cannot be empty", i+1)}
		}
		if len(trimmed) > 200 {
			return &ValidationError{Field: "options", Reason: fmt.Sprintf("option %d must be less than 200 characters", i+1)}
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return &ValidationError{Field: "options", Reason: "options must be unique"}
		}
		seen[key] = true
	}
	return nil
}

func validateDeadline(deadline time.Time) error {
	now := timeNow()
	if deadline.IsZero() {
		return &ValidationError{Field: "deadline", Reason: "deadline is required"}
	}
	if !deadline.After(now) {
		return &ValidationError{Field: "deadline", Reason: "deadline must be in the future"}
	}
	if deadline.After(now.AddDate(1, 0, 0)) {
		return &ValidationError{Field: "deadline", Reason: "deadline cannot be more than 1 year in the future"}
	}
	return nil
}

func validateCommentBody(body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return &ValidationError{Field: "body", Reason: "comment cannot be empty"}
	}
	if len(body) > 500 {
		return &ValidationError{Field: "body", Reason: "comment must be less than 500 characters"}
	}
	return nil
}

func validateRegistration(req models.RegisterRequest) error {
	if err := validateUsername(req.Username); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	return validateName(req.Name)
}
