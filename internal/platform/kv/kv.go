// Package kv is the durable key-value store behind the session and
// preference state. Values survive process restarts; keys are
// namespaced strings owned by exactly one module.
package kv

import (
	"context"
	"sync"
)

// Store is the durable key-value port. Get reports presence explicitly
// so callers can tell an absent key from an empty value.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is the in-memory Store used by tests and as a last-resort
// fallback. The mutex only matters for tests that exercise it from
// multiple goroutines; the application itself mutates on one thread.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
