package handlers

import (
	"strings"
	"sync"
	"time"
)

const (
	maxLoginAttempts = 5
	attemptWindow    = 15 * time.Minute
)

// loginLimiter counts failed login attempts per username in a sliding
// window. It is a process-local counter only; distributed rate limiting
// is out of scope.
type loginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{attempts: make(map[string][]time.Time)}
}

func (l *loginLimiter) key(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// blocked reports whether the username has exhausted its attempts.
func (l *loginLimiter) blocked(username string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prune(l.key(username))) >= maxLoginAttempts
}

// fail records a failed attempt.
func (l *loginLimiter) fail(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := l.key(username)
	l.attempts[k] = append(l.prune(k), time.Now())
}

// reset clears the counter after a successful login.
func (l *loginLimiter) reset(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, l.key(username))
}

// prune drops attempts older than the window. Callers hold the lock.
func (l *loginLimiter) prune(key string) []time.Time {
	cutoff := time.Now().Add(-attemptWindow)
	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = kept
	return kept
}
