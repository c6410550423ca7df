package store

import (
	"context"
	"sync"
)

// Memory implements Store in process memory. Used in tests and when
// persistence across restarts is not wanted.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Load retrieves a slot's record.
func (s *Memory) Load(ctx context.Context, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound(slot)
	}

	out := make([]byte, len(record))
	copy(out, record)
	return out, nil
}

// Save stores a copy of the record.
func (s *Memory) Save(ctx context.Context, slot string, record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(record))
	copy(stored, record)
	s.slots[slot] = stored
	return nil
}

// Delete empties a slot.
func (s *Memory) Delete(ctx context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, slot)
	return nil
}

// Exists checks whether a slot holds a record.
func (s *Memory) Exists(ctx context.Context, slot string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.slots[slot]
	return ok, nil
}
