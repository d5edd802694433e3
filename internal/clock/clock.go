// Package clock implements a Lamport logical clock.
package clock

import "sync"

// LamportClock is a monotonically increasing scalar clock. It is safe for
// concurrent use: a peer ticks it when issuing requests, observing inbound
// requests, and collecting replies, all from different goroutines.
type LamportClock struct {
	mu   sync.Mutex
	time uint64
}

// New creates a clock starting at zero.
func New() *LamportClock {
	return &LamportClock{}
}

// Tick advances the clock for a local event and returns the new value.
func (c *LamportClock) Tick() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time++
	return c.time
}

// Stamp advances the clock for an outbound message and returns the
// timestamp to attach to it.
func (c *LamportClock) Stamp() uint64 {
	return c.Tick()
}

// Observe merges a remote timestamp on message receipt: the clock becomes
// max(local, remote)+1. The new value is returned.
func (c *LamportClock) Observe(remote uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if remote > c.time {
		c.time = remote
	}
	c.time++
	return c.time
}

// Now returns the current value without advancing the clock. Intended for
// status reporting only; protocol events must use Tick, Stamp or Observe.
func (c *LamportClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}
