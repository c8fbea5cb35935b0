package session

import (
	"sync"
	"time"

	"donorbot/internal/domain"
)

// Store keeps per-user conversation sessions in memory.
// Sessions are copied out on Get and written back with Set, so each
// handler invocation owns its copy exclusively.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
	ttl      time.Duration
}

// NewStore creates a session store. ttl <= 0 disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[int64]domain.Session),
		ttl:      ttl,
	}
}

// Get returns the user's current session, or a fresh idle session if
// none exists or the stored one has expired.
func (s *Store) Get(userID int64) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[userID]
	if !exists || s.expired(sess, time.Now()) {
		return domain.Session{State: domain.StateIdle}
	}
	return sess
}

// Set stores the session and stamps its last-touch time
func (s *Store) Set(userID int64, sess domain.Session) {
	sess.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

// Reset ends the user's conversation
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// CleanupExpired removes abandoned sessions and returns how many were removed
func (s *Store) CleanupExpired() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}

func (s *Store) expired(sess domain.Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.UpdatedAt) > s.ttl
}
