package session

import (
	"context"
	"sync"
	"time"

	"github.com/calconv/backend/internal/domain"
)

// entry is a single stored interaction with expiration
type entry struct {
	interaction domain.Interaction
	expiration  time.Time
}

// MemoryStore is a thread-safe in-memory interaction store with TTL support.
// Expired entries are swept on write.
type MemoryStore struct {
	data  map[string]entry
	mutex sync.RWMutex
	now   func() time.Time
}

// NewMemoryStore creates a new in-memory interaction store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Get returns a copy of the stored interaction
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Interaction, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[id]
	if !exists || s.now().After(item.expiration) {
		return nil, domain.ErrInteractionNotFound
	}

	interaction := item.interaction
	return &interaction, nil
}

// Set stores a copy of the interaction under its ID
func (s *MemoryStore) Set(ctx context.Context, interaction *domain.Interaction, ttl time.Duration) error {
	if interaction == nil || interaction.ID == "" {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	s.sweepLocked(now)

	s.data[interaction.ID] = entry{
		interaction: *interaction,
		expiration:  now.Add(ttl),
	}
	return nil
}

// sweepLocked drops expired entries. Caller must hold the write lock.
func (s *MemoryStore) sweepLocked(now time.Time) {
	for id, item := range s.data {
		if now.After(item.expiration) {
			delete(s.data, id)
		}
	}
}
