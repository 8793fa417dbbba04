// ABOUTME: Sequence guard for tolerating out-of-order request completion
// ABOUTME: Stale responses are discarded instead of overwriting newer state

package api

import (
	"sync"
	"sync/atomic"
)

// SeqGuard orders the application of fetch results. Requests are not
// cancelled when superseded; instead each fetch takes a ticket with
// Next, and Apply runs the callback only when no newer ticket has been
// applied yet. A stale completion is silently discarded.
type SeqGuard struct {
	mu      sync.Mutex
	counter atomic.Uint64
	applied uint64
}

// Next issues a ticket for a fetch about to start.
func (g *SeqGuard) Next() uint64 {
	return g.counter.Add(1)
}

// Apply runs fn only if seq is newer than the last applied ticket.
// Returns true when fn ran.
func (g *SeqGuard) Apply(seq uint64, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq <= g.applied {
		return false
	}
	g.applied = seq
	fn()
	return true
}
