package store

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"
)

// Store implements the domain operations over a SQL database. It is the
// only holder of shared mutable state; every method takes the caller's
// Identity explicitly instead of reading process-wide session globals.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isUniqueViolation matches constraint errors from both supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeTags(raw string) []string {
	tags := []string{}
	if raw == "" {
		return tags
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}

// timeNow exists so tests can pin the clock.
var timeNow = time.Now
