package auth

import (
	"sync"
	"time"
)

// SessionStore tracks token IDs issued to the operator so logout can
// revoke them before expiry. Implementations must be safe for
// concurrent use.
type SessionStore interface {
	Put(tokenID string, expiresAt time.Time)
	Active(tokenID string) bool
	Revoke(tokenID string)
	Close()
}

// MemorySessionStore keeps sessions in memory. A single-operator
// deployment does not warrant externalised session state; restarting
// the server invalidates all sessions, which is acceptable here.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
	done     chan struct{}
	once     sync.Once
}

// NewMemorySessionStore creates the store and starts a janitor that
// drops expired entries.
func NewMemorySessionStore() *MemorySessionStore {
	s := &MemorySessionStore{
		sessions: make(map[string]time.Time),
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemorySessionStore) Put(tokenID string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenID] = expiresAt
}

func (s *MemorySessionStore) Active(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expiresAt, ok := s.sessions[tokenID]
	return ok && time.Now().Before(expiresAt)
}

func (s *MemorySessionStore) Revoke(tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
}

// Close stops the janitor. Safe to call more than once.
func (s *MemorySessionStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemorySessionStore) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, expiresAt := range s.sessions {
				if now.After(expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
