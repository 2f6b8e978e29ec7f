// Package session models the client-held session and the per-portal guard
// that decides, on entry, whether to admit or redirect.
package session

import (
	"sync"

	"goat-dashboard/internal/domain"
)

// Session is what the client keeps after a successful login: the signed token
// plus the last-known public user snapshot, denormalized for display.
type Session struct {
	Token string
	User  *domain.User
}

// Store holds the client's session. Reads and clears are atomic; each guard
// mount re-reads the store independently instead of sharing guard state.
type Store struct {
	mu   sync.Mutex
	sess *Session
}

func NewStore() *Store {
	return &Store{}
}

// Set installs the session produced by a login.
func (s *Store) Set(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = &sess
}

// Get returns the current session, or nil when logged out.
func (s *Store) Get() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil
	}
	copied := *s.sess
	return &copied
}

// Clear removes the session. Guards mounted afterwards redirect to login.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
}
