package tween

import (
	"sync"
	"time"
)

// Clock supplies the monotonic time the registry schedules against.
type Clock interface {
	// Now returns the elapsed time since the clock's origin.
	Now() time.Duration
}

type systemClock struct {
	origin time.Time
}

// NewSystemClock returns a Clock backed by the monotonic wall clock, starting at zero.
//
// Returns:
//   - Clock: the new clock
func NewSystemClock() Clock {
	return &systemClock{origin: time.Now()}
}

func (c *systemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock is a Clock that only moves when told to. Useful for deterministic replays and tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	return c.now
}
