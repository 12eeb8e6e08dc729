// Package memory is the in-memory persistence backend, used when no
// database DSN is configured and in tests. Repos share one Store; the
// TxManager's lock is what serializes access, repos themselves do not lock.
package memory

import (
	"sync"

	"bountyverse/internal/app/ports"
)

type Store struct {
	mu    sync.Mutex
	slots map[string]ports.SaveState
}

func NewStore() *Store {
	return &Store{
		slots: make(map[string]ports.SaveState),
	}
}

func (s *Store) SeedSlot(slot string, state ports.SaveState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = state
}
