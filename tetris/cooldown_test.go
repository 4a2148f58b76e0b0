package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCooldown(t *testing.T) {
	c := tetris.Cooldown{Interval: 200 * time.Millisecond}

	assert.False(t, c.Ready(150*time.Millisecond))
	assert.True(t, c.Ready(200*time.Millisecond))
	assert.False(t, c.Ready(399*time.Millisecond))
	assert.True(t, c.Ready(400*time.Millisecond))

	// A late frame restarts the interval from when it fired.
	assert.True(t, c.Ready(900*time.Millisecond))
	assert.False(t, c.Ready(1000*time.Millisecond))
	assert.True(t, c.Ready(1100*time.Millisecond))
}

func TestCooldownReset(t *testing.T) {
	c := tetris.Cooldown{Interval: time.Second}
	c.Reset(5 * time.Second)
	assert.False(t, c.Ready(5500*time.Millisecond))
	assert.True(t, c.Ready(6*time.Second))
}

func TestCooldownZeroIntervalAlwaysFires(t *testing.T) {
	var c tetris.Cooldown
	assert.True(t, c.Ready(0))
	assert.True(t, c.Ready(0))
}

func TestSystemClockIsMonotonic(t *testing.T) {
	clock := tetris.NewSystemClock()
	first := clock.Now()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, first, time.Duration(0))
	assert.Greater(t, clock.Now(), first)
}
