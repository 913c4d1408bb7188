package kv

import (
	"context"
	"encoding/json"
	"fmt"

	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// MemoryStore is an in-memory KVStore with the same semantics as the
// SQLite store, used in tests. Values round-trip through JSON so the
// serialization behavior matches production.
type MemoryStore struct {
	entries map[string][]byte
}

var _ portsrepo.KVStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Load unmarshals the stored value into dest; absent or malformed values
// report not found.
func (s *MemoryStore) Load(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Save marshals value and stores it under key.
func (s *MemoryStore) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for key %s: %w", key, err)
	}
	s.entries[key] = raw
	return nil
}

// Corrupt overwrites the value under key with text that does not parse,
// for exercising the malformed-value fallback in tests.
func (s *MemoryStore) Corrupt(key string) {
	s.entries[key] = []byte("{not json")
}
