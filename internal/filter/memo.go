// ABOUTME: Memoization wrapper caching the last filter pass
// ABOUTME: Keyed on collection identity plus criteria value; never required for correctness

package filter

import (
	"sync"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// Memo caches the most recent ApplyFilters result. The cache key is the
// identity of the input slice (collections are fully replaced on every
// refresh, so pointer identity is a valid key) together with the
// criteria value. A miss simply recomputes; hits and misses both return
// exactly what ApplyFilters would.
type Memo struct {
	mu           sync.Mutex
	lastCelulas  []model.Celula
	lastCriteria Criteria
	lastResult   []model.Celula
	valid        bool
}

// Apply returns the filtered collection, reusing the cached result when
// both the collection and the criteria are unchanged.
func (m *Memo) Apply(celulas []model.Celula, c Criteria) []model.Celula {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && sameSlice(m.lastCelulas, celulas) && m.lastCriteria.Equal(c) {
		return m.lastResult
	}

	result := ApplyFilters(celulas, c)
	m.lastCelulas = celulas
	m.lastCriteria = c
	m.lastResult = result
	m.valid = true
	return result
}

// Invalidate drops the cached result.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
	m.lastCelulas = nil
	m.lastResult = nil
}

// sameSlice reports whether two slices share identity: same length and
// same backing array start. Two empty slices are considered the same.
func sameSlice(a, b []model.Celula) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
