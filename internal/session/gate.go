package session

import (
	"context"
	"sync"
)

// Gate is a cooperative pause flag. While it is set, Wait blocks the caller
// until the gate is cleared. It never cancels anything by itself.
type Gate struct {
	mu     sync.Mutex
	paused bool
	resume chan struct{} // closed when the gate clears; nil while open
}

// NewGate creates an open gate
func NewGate() *Gate {
	return &Gate{}
}

// Toggle flips the gate and returns the new paused state
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused {
		g.openLocked()
	} else {
		g.paused = true
		g.resume = make(chan struct{})
	}
	return g.paused
}

// Paused reports whether the gate is set
func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Reset clears the gate and releases any waiters
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.paused {
		g.openLocked()
	}
}

// Wait returns immediately if the gate is open, otherwise blocks until it is
// cleared or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	if !g.paused {
		g.mu.Unlock()
		return nil
	}
	resume := g.resume
	g.mu.Unlock()

	select {
	case <-resume:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gate) openLocked() {
	g.paused = false
	close(g.resume)
	g.resume = nil
}
