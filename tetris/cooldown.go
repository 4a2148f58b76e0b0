package tetris

import "time"

// DefaultDropInterval is how often the active block falls on its own.
const DefaultDropInterval = 200 * time.Millisecond

// Cooldown is an edge-triggered interval gate. It fires once the interval has
// elapsed since it last fired, then restarts from the time it fired.
type Cooldown struct {
	Interval time.Duration
	last     time.Duration
}

// Ready reports whether the interval has elapsed at now, and if so re-arms
// the cooldown from now.
func (c *Cooldown) Ready(now time.Duration) bool {
	if now-c.last < c.Interval {
		return false
	}
	c.last = now
	return true
}

// Reset re-arms the cooldown as if it had just fired at now.
func (c *Cooldown) Reset(now time.Duration) {
	c.last = now
}
