package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	"github.com/nameid/nameid/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore is an in-memory SessionStore for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

type sessionNotFoundError struct{}

func (sessionNotFoundError) Error() string { return "session not found" }

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound error = sessionNotFoundError{}

// Save stores the session under its token.
func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

// Get returns the stored session, honoring expiry.
func (s *MemorySessionStore) Get(_ context.Context, token string) (domainauth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

// Delete removes the session, if present.
func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len reports the number of stored sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
