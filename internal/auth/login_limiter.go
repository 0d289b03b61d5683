package auth

import (
	"sync"
	"time"
)

// Manager login attempt ceiling.
const (
	maxLoginAttempts = 5
	loginLockout     = 15 * time.Minute
)

type attemptRecord struct {
	count       int
	lastAttempt time.Time
}

// LoginLimiter is a fixed-window failed-attempt counter keyed by client IP.
// Entries whose window has elapsed are dropped on the next touch, so the map
// stays bounded by the set of recently failing clients.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]attemptRecord
	max      int
	lockout  time.Duration
	now      func() time.Time
}

func NewLoginLimiter() *LoginLimiter {
	return newLoginLimiter(maxLoginAttempts, loginLockout, time.Now)
}

func newLoginLimiter(max int, lockout time.Duration, now func() time.Time) *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string]attemptRecord),
		max:      max,
		lockout:  lockout,
		now:      now,
	}
}

// Blocked reports whether the key has exhausted its attempts, and if so how
// many whole minutes remain until the window resets.
func (l *LoginLimiter) Blocked(key string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.attempts[key]
	if !ok {
		return false, 0
	}

	elapsed := l.now().Sub(rec.lastAttempt)
	if elapsed >= l.lockout {
		delete(l.attempts, key)
		return false, 0
	}
	if rec.count < l.max {
		return false, 0
	}

	remaining := int((l.lockout - elapsed + time.Minute - 1) / time.Minute)
	return true, remaining
}

// Fail records a failed attempt for the key.
func (l *LoginLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.attempts[key]
	rec.count++
	rec.lastAttempt = l.now()
	l.attempts[key] = rec
}

// Reset clears the key after a successful login.
func (l *LoginLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}
