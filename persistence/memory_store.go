// Package persistence stores hands and loads them back by replaying their
// recorded play history against the original deck.
package persistence

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/feltkit/holdem/domain"
)

// CouldNotLoadHandError is returned when no hand is stored under the id.
type CouldNotLoadHandError struct {
	ID domain.HandID
}

func (e CouldNotLoadHandError) Error() string {
	return fmt.Sprintf("hand id is not available: %s", e.ID)
}

type storedHand struct {
	hand    *domain.Hand
	savedAt time.Time
}

// MemoryStore keeps hands in memory. Hands are immutable values, so the
// store hands out the stored pointer directly; the mutex only guards the
// map itself and serializes writes per id.
type MemoryStore struct {
	mu    sync.RWMutex
	clock quartz.Clock
	hands map[domain.HandID]storedHand
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(quartz.NewReal())
}

// NewMemoryStoreWithClock injects the clock used for saved-at metadata, so
// tests control time.
func NewMemoryStoreWithClock(clock quartz.Clock) *MemoryStore {
	return &MemoryStore{
		clock: clock,
		hands: make(map[domain.HandID]storedHand),
	}
}

// SaveHand stores the hand under the id, overwriting any previous version.
func (s *MemoryStore) SaveHand(id domain.HandID, hand *domain.Hand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hands[id] = storedHand{hand: hand, savedAt: s.clock.Now()}
	return nil
}

// LoadByID returns the stored hand.
func (s *MemoryStore) LoadByID(id domain.HandID) (*domain.Hand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.hands[id]
	if !ok {
		return nil, CouldNotLoadHandError{ID: id}
	}
	return stored.hand, nil
}

// SavedAt reports when the hand was last saved.
func (s *MemoryStore) SavedAt(id domain.HandID) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.hands[id]
	return stored.savedAt, ok
}

// Size counts the stored hands.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hands)
}
