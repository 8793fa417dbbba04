// ABOUTME: Tests for snapshot-backed fetches with offline fallback
// ABOUTME: Validates persistence on success and stale serving on failure

package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/store"
)

func TestSnapshotCache_PersistsOnSuccess(t *testing.T) {
	ctx := context.Background()
	state := store.NewMockStore()
	cache := NewSnapshotCache(state)

	fresh := []model.Celula{{ID: 1, Nombre: "Jóvenes Centro", Lider: &model.Usuario{ID: 7}}}
	got, stale, _, err := cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
		return fresh, nil
	})
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, fresh, got)

	snap, err := state.LoadSnapshot(ctx, "celulas")
	require.NoError(t, err)
	assert.Contains(t, string(snap.Data), "Jóvenes Centro")
}

func TestSnapshotCache_ServesStaleOnFailure(t *testing.T) {
	ctx := context.Background()
	state := store.NewMockStore()
	cache := NewSnapshotCache(state)

	// Prime the snapshot with one successful fetch
	fresh := []model.Celula{{ID: 1, Nombre: "Jóvenes Centro", Lider: &model.Usuario{ID: 7}}}
	_, _, _, err := cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
		return fresh, nil
	})
	require.NoError(t, err)

	// Backend goes away: the cached snapshot is served, marked stale
	got, stale, fetchedAt, err := cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
		return nil, errors.New("connection refused")
	})
	require.NoError(t, err)
	assert.True(t, stale)
	assert.False(t, fetchedAt.IsZero())
	require.Len(t, got, 1)
	assert.Equal(t, "Jóvenes Centro", got[0].Nombre)
}

func TestSnapshotCache_AuthErrorSurfacesInsteadOfStale(t *testing.T) {
	ctx := context.Background()
	state := store.NewMockStore()
	cache := NewSnapshotCache(state)

	// Prime the snapshot with one successful fetch
	fresh := []model.Celula{{ID: 1, Nombre: "Jóvenes Centro", Lider: &model.Usuario{ID: 7}}}
	_, _, _, err := cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
		return fresh, nil
	})
	require.NoError(t, err)

	// The backend answered 401 (expired token was discarded): the auth
	// failure must reach the caller so it can drive re-login, never the
	// stale snapshot under an offline notice
	got, stale, _, err := cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
		return nil, &APIError{Status: 401}
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, stale)
	assert.Nil(t, got)

	_, _, _, err = cache.Usuarios(ctx, func(context.Context) ([]model.Usuario, error) {
		return nil, &APIError{Status: 403}
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSnapshotCache_StaleCompletionDoesNotOverwriteSnapshot(t *testing.T) {
	ctx := context.Background()
	state := store.NewMockStore()
	cache := NewSnapshotCache(state)

	older := []model.Celula{{ID: 1, Nombre: "Vieja", Lider: &model.Usuario{ID: 7}}}
	newer := []model.Celula{{ID: 2, Nombre: "Nueva", Lider: &model.Usuario{ID: 8}}}

	inFlight := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	// First fetch takes its ticket, then blocks until the second one
	// has completed, simulating out-of-order completion
	go func() {
		defer close(done)
		_, _, _, _ = cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
			close(inFlight)
			<-release
			return older, nil
		})
	}()

	<-inFlight
	_, _, _, err := cache.Celulas(ctx, func(context.Context) ([]model.Celula, error) {
		return newer, nil
	})
	require.NoError(t, err)
	close(release)
	<-done

	// The newer result stays persisted; the older completion was discarded
	snap, err := state.LoadSnapshot(ctx, "celulas")
	require.NoError(t, err)
	assert.Contains(t, string(snap.Data), "Nueva")
	assert.NotContains(t, string(snap.Data), "Vieja")
}

func TestSnapshotCache_FailureWithoutSnapshot(t *testing.T) {
	ctx := context.Background()
	cache := NewSnapshotCache(store.NewMockStore())

	fetchErr := errors.New("connection refused")
	_, _, _, err := cache.Usuarios(ctx, func(context.Context) ([]model.Usuario, error) {
		return nil, fetchErr
	})
	assert.ErrorIs(t, err, fetchErr)
}

func TestSnapshotCache_Usuarios(t *testing.T) {
	ctx := context.Background()
	state := store.NewMockStore()
	cache := NewSnapshotCache(state)

	fresh := []model.Usuario{{ID: 1, Nombre: "Ana", Email: "ana@example.com"}}
	got, stale, _, err := cache.Usuarios(ctx, func(context.Context) ([]model.Usuario, error) {
		return fresh, nil
	})
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, fresh, got)
}
