package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store used for tests and throwaway sessions.
type Memory struct {
	mu        sync.RWMutex
	data      map[string][]byte
	revisions map[string]int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte), revisions: make(map[string]int64)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	m.revisions[key]++
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.revisions, key)
	return nil
}

// Revision counts the writes to key since it was last deleted.
func (m *Memory) Revision(_ context.Context, key string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rev, ok := m.revisions[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return rev, nil
}

func (m *Memory) Close() error {
	return nil
}
