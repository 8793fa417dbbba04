// ABOUTME: Store interface and data types for the console's local state
// ABOUTME: Defines session key-value persistence and entity snapshot caching

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when the requested state does not exist.
var ErrNotFound = errors.New("not found")

// Snapshot is a cached entity collection with its fetch time.
type Snapshot struct {
	Entity    string
	Data      []byte
	FetchedAt time.Time
}

// Store is the interface for local state persistence.
type Store interface {
	// SaveSession replaces the persisted session with the given fields
	// atomically. An empty map is equivalent to ClearSession.
	SaveSession(ctx context.Context, fields map[string]string) error

	// LoadSession returns the persisted session fields, or ErrNotFound
	// when no session is stored.
	LoadSession(ctx context.Context) (map[string]string, error)

	// ClearSession removes all persisted session fields atomically.
	ClearSession(ctx context.Context) error

	// SaveSnapshot stores the serialized collection for an entity,
	// replacing any previous snapshot.
	SaveSnapshot(ctx context.Context, entity string, data []byte) error

	// LoadSnapshot returns the stored snapshot for an entity, or
	// ErrNotFound when none exists.
	LoadSnapshot(ctx context.Context, entity string) (*Snapshot, error)

	// Close releases the underlying resources.
	Close() error
}
