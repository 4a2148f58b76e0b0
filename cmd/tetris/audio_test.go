package main

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	pcm := synthesize(tone{Frequency: 440, Duration: 100 * time.Millisecond}, 1000)
	require.Len(t, pcm, 100*4)

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.Zero(t, first, "fade in starts silent")
	assert.Zero(t, last, "fade out ends silent")

	// Left and right channels carry the same sample.
	for i := 0; i < len(pcm); i += 4 {
		assert.Equal(t, pcm[i:i+2], pcm[i+2:i+4])
	}

	var peak int16
	for i := 0; i < len(pcm); i += 4 {
		if v := int16(binary.LittleEndian.Uint16(pcm[i:])); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, int16(0))
}

func TestCueTones(t *testing.T) {
	assert.Equal(t, 660.0, cueTones[tetris.CueRotate].Frequency)
	assert.Equal(t, 60*time.Millisecond, cueTones[tetris.CueRotate].Duration)
	assert.Equal(t, 880.0, cueTones[tetris.CueClear].Frequency)
	assert.Equal(t, 180*time.Millisecond, cueTones[tetris.CueClear].Duration)
}
