package main

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCueStreamerLength(t *testing.T) {
	for cue, tn := range cueTones {
		t.Run(cue.String(), func(t *testing.T) {
			s, err := cueStreamer(tn, 0.5)
			require.NoError(t, err)

			buf := make([][2]float64, 512)
			total := 0
			var peak float64
			for {
				n, ok := s.Stream(buf)
				for _, sample := range buf[:n] {
					if sample[0] > peak {
						peak = sample[0]
					}
				}
				total += n
				if !ok || n == 0 {
					break
				}
			}
			assert.Equal(t, sampleRate.N(tn.Duration), total)
			assert.InDelta(t, 0.5, peak, 0.05, "gain scales the unit sine")
		})
	}
}

func TestCueTones(t *testing.T) {
	assert.Equal(t, 60*time.Millisecond, cueTones[tetris.CueRotate].Duration)
	assert.Equal(t, 180*time.Millisecond, cueTones[tetris.CueClear].Duration)
}
