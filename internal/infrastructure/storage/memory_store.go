package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process implementation of the storage port, used by
// tests as a substitute for the real backends.

type MemoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make(json.RawMessage, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// Seed writes a raw value without going through Put's copy, handy for
// corrupt-payload tests.
func (s *MemoryStore) Seed(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = json.RawMessage(value)
}
