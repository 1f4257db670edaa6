package scheduler

import "sync"

// inFlightGuard serializes cycles: at most one may run at a time, and a
// tick that arrives while one is running is skipped rather than queued.
//
// It is safe for concurrent use.
type inFlightGuard struct {
	mu      sync.Mutex
	running bool
}

// tryAcquire marks a cycle as running. Returns false when one already is.
func (g *inFlightGuard) tryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return false
	}
	g.running = true
	return true
}

func (g *inFlightGuard) release() {
	g.mu.Lock()
	g.running = false
	g.mu.Unlock()
}
