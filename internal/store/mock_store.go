// ABOUTME: In-memory Store implementation for tests
// ABOUTME: Mirrors SQLiteStore semantics including atomic session replacement

package store

import (
	"context"
	"sync"
	"time"
)

// MockStore is an in-memory Store for tests.
type MockStore struct {
	mu        sync.Mutex
	session   map[string]string
	snapshots map[string]*Snapshot

	// SaveSessionErr, when set, is returned by SaveSession to simulate
	// persistence failures.
	SaveSessionErr error
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		snapshots: make(map[string]*Snapshot),
	}
}

// SaveSession replaces the session fields.
func (m *MockStore) SaveSession(_ context.Context, fields map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveSessionErr != nil {
		return m.SaveSessionErr
	}
	m.session = make(map[string]string, len(fields))
	for k, v := range fields {
		m.session[k] = v
	}
	return nil
}

// LoadSession returns a copy of the session fields.
func (m *MockStore) LoadSession(_ context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.session) == 0 {
		return nil, ErrNotFound
	}
	fields := make(map[string]string, len(m.session))
	for k, v := range m.session {
		fields[k] = v
	}
	return fields, nil
}

// ClearSession removes all session fields.
func (m *MockStore) ClearSession(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

// SaveSnapshot stores a snapshot with the current time.
func (m *MockStore) SaveSnapshot(_ context.Context, entity string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[entity] = &Snapshot{
		Entity:    entity,
		Data:      append([]byte(nil), data...),
		FetchedAt: time.Now().UTC(),
	}
	return nil
}

// LoadSnapshot returns the stored snapshot for an entity.
func (m *MockStore) LoadSnapshot(_ context.Context, entity string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snapshots[entity]
	if !ok {
		return nil, ErrNotFound
	}
	return snap, nil
}

// Close is a no-op for the mock.
func (m *MockStore) Close() error {
	return nil
}
