package session

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
)

type memoryEntry struct {
	userID    uint64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions are lost on restart
// and are not shared between instances.
type MemoryStore struct {
	mu           sync.RWMutex
	entries      map[string]memoryEntry
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore(ttl time.Duration, timeProvider coreport.TimeProvider) persistence.SessionStore {
	return &MemoryStore{
		entries:      make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Get returns the user bound to sessionID if it has not expired
func (s *MemoryStore) Get(_ context.Context, sessionID string) (uint64, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return 0, false, nil
	}

	if !s.timeProvider.Now().Before(entry.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock, Set may have refreshed it
		if current, ok := s.entries[sessionID]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(s.entries, sessionID)
		}
		s.mu.Unlock()
		return 0, false, nil
	}

	return entry.userID, true, nil
}

// Set binds sessionID to userID for the store's TTL
func (s *MemoryStore) Set(_ context.Context, sessionID string, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		userID:    userID,
		expiresAt: s.timeProvider.Now().Add(s.ttl),
	}
	return nil
}

// Destroy removes sessionID
func (s *MemoryStore) Destroy(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
