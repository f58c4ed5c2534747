package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store for development and tests. State is
// lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, sessionID, key string, v any) error {
	m.mu.RLock()
	raw, ok := m.values[sessionID+":"+key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("session: decode %q: %w", key, err)
	}
	return nil
}

func (m *MemoryStore) Set(ctx context.Context, sessionID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.values[sessionID+":"+key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID, key string) error {
	m.mu.Lock()
	delete(m.values, sessionID+":"+key)
	m.mu.Unlock()
	return nil
}
