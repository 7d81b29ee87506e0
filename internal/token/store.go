// Package token owns the client-side session: access and refresh
// tokens, their lifecycle, and unverified expiry inspection. No other
// package reads or writes the persisted token representation.
package token

import (
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Store holds at most one session at a time. Writes are idempotent and
// last-write-wins; concurrent façade calls only ever read a snapshot.
type Store interface {
	// SetTokens replaces the current session.
	SetTokens(access, refresh string) error
	// AccessToken returns the current access token, empty when logged out.
	// The value is a snapshot valid only for the current request's
	// credential attachment.
	AccessToken() string
	// RefreshToken returns the current refresh token, empty when logged out.
	RefreshToken() string
	// ClearTokens destroys the session. Clearing an empty store is a no-op.
	ClearTokens() error
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetTokens implements Store.
func (s *MemoryStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	return nil
}

// AccessToken implements Store.
func (s *MemoryStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken implements Store.
func (s *MemoryStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// ClearTokens implements Store.
func (s *MemoryStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}

// Expiration decodes the token's exp claim without verifying the
// signature. The second return is false when the token is malformed or
// carries no exp claim.
func Expiration(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

// IsExpired reports whether the token's exp claim is in the past. It
// fails open: a malformed token or a missing claim reads as expired,
// never as an error.
func IsExpired(raw string) bool {
	exp, ok := Expiration(raw)
	if !ok {
		return true
	}
	return nowFunc().After(exp)
}

// nowFunc is swapped in tests.
var nowFunc = time.Now
