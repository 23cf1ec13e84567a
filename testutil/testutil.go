package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Manojmaturi07/voteanalytics/auth"
	"github.com/Manojmaturi07/voteanalytics/cliparse"
	"github.com/Manojmaturi07/voteanalytics/db"
	"github.com/Manojmaturi07/voteanalytics/models"
)

// TestPassword is the plaintext password for all fixture users.
const TestPassword = "password123"

// TestJWTSecret signs session tokens in tests.
const TestJWTSecret = "test-secret"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3330,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		JWTSecret:    TestJWTSecret,
		SessionTTL:   time.Hour,
	}
}

// CreateTestUser inserts an account with TestPassword and returns it.
func CreateTestUser(t *testing.T, conn *sql.DB, username, role string) models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		Name:         "Test User",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, username, email, name, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Username, user.Email, user.Name, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// Identity builds the role context a logged-in user would carry.
func Identity(user models.User) models.Identity {
	return models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
}

// AuthHeader issues a session token for the user and returns the header map
// to pass to MakeRequest.
func AuthHeader(t *testing.T, user models.User) map[string]string {
	t.Helper()

	token, err := auth.IssueToken([]byte(TestJWTSecret), user.ID, user.Username, user.Name, user.Role, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestPoll inserts a poll with the given options and returns its ID.
// The deadline is one day out; use ExpirePoll to backdate it.
func CreateTestPoll(t *testing.T, conn *sql.DB, published bool, options ...string) string {
	t.Helper()

	if len(options) == 0 {
		options = []string{"Option A", "Option B"}
	}

	pollID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO poll (id, question, deadline, is_locked, is_published, category, tags, created_at)
		VALUES ($1, 'Which option should we pick?', $2, FALSE, $3, '', '[]', $4)
	`, pollID, time.Now().Add(24*time.Hour), published, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	for i, text := range options {
		_, err := conn.Exec(`
			INSERT INTO option (poll_id, id, text, votes) VALUES ($1, $2, $3, 0)
		`, pollID, i+1, text)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
	}

	return pollID
}

// ExpirePoll backdates a poll's deadline without locking it, so lazy
// expiry can be observed.
func ExpirePoll(t *testing.T, conn *sql.DB, pollID string) {
	t.Helper()

	_, err := conn.Exec(`UPDATE poll SET deadline = $1 WHERE id = $2`,
		time.Now().Add(-time.Hour), pollID)
	if err != nil {
		t.Fatalf("Failed to expire test poll: %v", err)
	}
}

// LockPoll sets a poll's lock flag directly.
func LockPoll(t *testing.T, conn *sql.DB, pollID string) {
	t.Helper()

	_, err := conn.Exec(`UPDATE poll SET is_locked = TRUE WHERE id = $1`, pollID)
	if err != nil {
		t.Fatalf("Failed to lock test poll: %v", err)
	}
}

// AddTestVote appends a ledger entry and bumps the option tally, the same
// pair of writes a real vote performs.
func AddTestVote(t *testing.T, conn *sql.DB, pollID string, user models.User, optionID int) {
	t.Helper()

	var optionText string
	err := conn.QueryRow(`SELECT text FROM option WHERE poll_id = $1 AND id = $2`,
		pollID, optionID).Scan(&optionText)
	if err != nil {
		t.Fatalf("Failed to query option: %v", err)
	}

	_, err = conn.Exec(`
		UPDATE option SET votes = votes + 1 WHERE poll_id = $1 AND id = $2
	`, pollID, optionID)
	if err != nil {
		t.Fatalf("Failed to increment tally: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO vote (poll_id, user_id, username, name, option_id, option_text, voted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, pollID, user.ID, user.Username, user.Name, optionID, optionText, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
