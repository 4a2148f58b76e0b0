package tetris

import (
	"image/color"
	"time"
)

// Key is a discrete input event as seen by the game.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	// KeyOther is any key without a game binding. It still dismisses the
	// game over screen.
	KeyOther
)

var keyNames = [...]string{"none", "left", "right", "down", "up", "other"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// InputSource yields at most one key event per poll.
type InputSource interface {
	Poll() Key
}

// Renderer draws a filled rectangle in pixel space.
type Renderer interface {
	DrawRect(x, y, width, height int, c color.RGBA)
}

// Cue is a short sound effect triggered by the game.
type Cue uint8

const (
	CueRotate Cue = iota + 1
	CueClear
)

func (c Cue) String() string {
	switch c {
	case CueRotate:
		return "rotate"
	case CueClear:
		return "clear"
	default:
		return "unknown"
	}
}

// SoundSink plays cues fire-and-forget.
type SoundSink interface {
	Play(cue Cue)
}

// Silence is a SoundSink that discards every cue.
var Silence SoundSink = silence{}

type silence struct{}

func (silence) Play(Cue) {}

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures time elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose origin is the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}
