// ABOUTME: Snapshot-backed fetch helpers for offline listing
// ABOUTME: Falls back to the persisted local snapshot when the backend is unreachable

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/store"
)

// Snapshot entity names in the local state store.
const (
	snapshotCelulas  = "celulas"
	snapshotUsuarios = "usuarios"
)

// SnapshotCache wraps entity fetches with local snapshot persistence.
// A successful fetch replaces the snapshot; a request that never
// completed falls back to the last snapshot, marked stale with its
// fetch time. HTTP-level failures (401 after token expiry, 403, 5xx)
// surface to the caller instead, so the guarded action can redirect.
//
// Snapshot writes go through a sequence guard: when fetches overlap,
// only the newest completion replaces the persisted snapshot and an
// out-of-order older result is discarded.
type SnapshotCache struct {
	state       store.Store
	seqCelulas  SeqGuard
	seqUsuarios SeqGuard
	logger      *slog.Logger
}

// NewSnapshotCache creates a cache over the given state store.
func NewSnapshotCache(state store.Store) *SnapshotCache {
	return &SnapshotCache{
		state:  state,
		logger: slog.Default().With("component", "snapshot"),
	}
}

// Celulas fetches the célula collection, persisting it on success. When
// the request never completed it returns the cached snapshot with
// stale=true and its fetch time; the error is returned when the backend
// answered with a failure status, or when no snapshot exists either.
func (s *SnapshotCache) Celulas(ctx context.Context, fetch func(context.Context) ([]model.Celula, error)) ([]model.Celula, bool, time.Time, error) {
	ticket := s.seqCelulas.Next()
	celulas, err := fetch(ctx)
	if err == nil {
		s.seqCelulas.Apply(ticket, func() { s.persist(ctx, snapshotCelulas, celulas) })
		return celulas, false, time.Now(), nil
	}

	// The backend answered: an auth or server failure is not an offline
	// condition and must reach the caller untouched
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return nil, false, time.Time{}, err
	}

	var cached []model.Celula
	fetchedAt, loadErr := s.load(ctx, snapshotCelulas, &cached)
	if loadErr != nil {
		return nil, false, time.Time{}, err
	}
	s.logger.Warn("backend unreachable, serving cached células", "fetched_at", fetchedAt, "error", err)
	return cached, true, fetchedAt, nil
}

// Usuarios is the user-collection counterpart of Celulas.
func (s *SnapshotCache) Usuarios(ctx context.Context, fetch func(context.Context) ([]model.Usuario, error)) ([]model.Usuario, bool, time.Time, error) {
	ticket := s.seqUsuarios.Next()
	usuarios, err := fetch(ctx)
	if err == nil {
		s.seqUsuarios.Apply(ticket, func() { s.persist(ctx, snapshotUsuarios, usuarios) })
		return usuarios, false, time.Now(), nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return nil, false, time.Time{}, err
	}

	var cached []model.Usuario
	fetchedAt, loadErr := s.load(ctx, snapshotUsuarios, &cached)
	if loadErr != nil {
		return nil, false, time.Time{}, err
	}
	s.logger.Warn("backend unreachable, serving cached usuarios", "fetched_at", fetchedAt, "error", err)
	return cached, true, fetchedAt, nil
}

// persist stores a fresh snapshot; failures are logged, not fatal.
func (s *SnapshotCache) persist(ctx context.Context, entity string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding snapshot", "entity", entity, "error", err)
		return
	}
	if err := s.state.SaveSnapshot(ctx, entity, data); err != nil {
		s.logger.Error("saving snapshot", "entity", entity, "error", err)
	}
}

// load reads and decodes the stored snapshot into out.
func (s *SnapshotCache) load(ctx context.Context, entity string, out any) (time.Time, error) {
	snap, err := s.state.LoadSnapshot(ctx, entity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return time.Time{}, err
		}
		return time.Time{}, fmt.Errorf("loading snapshot %q: %w", entity, err)
	}
	if err := json.Unmarshal(snap.Data, out); err != nil {
		return time.Time{}, fmt.Errorf("decoding snapshot %q: %w", entity, err)
	}
	return snap.FetchedAt, nil
}
