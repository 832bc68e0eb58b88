// Package ratelimit enforces the per-session free-message allowance.
package ratelimit

import "sync"

// Key identifies one quota counter: a client session talking to one business.
type Key struct {
	SessionID  string
	BusinessID string
}

// Store tracks remaining free messages per (session, business) pair.
type Store interface {
	Remaining(sessionID, businessID string) int
	Decrement(sessionID, businessID string)
}

// MemoryStore implements Store with a mutex-guarded map. Counters are
// initialized lazily to the configured limit, only ever decrease until
// process restart, and are not shared across processes.
type MemoryStore struct {
	mu        sync.Mutex
	limit     int
	remaining map[Key]int
}

// NewMemoryStore creates a quota store granting limit messages per key.
func NewMemoryStore(limit int) *MemoryStore {
	if limit < 0 {
		limit = 0
	}
	return &MemoryStore{
		limit:     limit,
		remaining: make(map[Key]int),
	}
}

// Remaining returns the current allowance for the pair, initializing
// unseen pairs to the configured limit.
func (s *MemoryStore) Remaining(sessionID, businessID string) int {
	key := Key{SessionID: sessionID, BusinessID: businessID}

	s.mu.Lock()
	defer s.mu.Unlock()

	count, ok := s.remaining[key]
	if !ok {
		count = s.limit
		s.remaining[key] = count
	}
	return count
}

// Decrement consumes one message from the pair's allowance, flooring at
// zero. Decrementing an unseen pair initializes it first.
func (s *MemoryStore) Decrement(sessionID, businessID string) {
	key := Key{SessionID: sessionID, BusinessID: businessID}

	s.mu.Lock()
	defer s.mu.Unlock()

	count, ok := s.remaining[key]
	if !ok {
		count = s.limit
	}
	if count > 0 {
		count--
	}
	s.remaining[key] = count
}
