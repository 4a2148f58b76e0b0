package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	Frequency float64
	Duration  time.Duration
}

var cueTones = map[tetris.Cue]tone{
	tetris.CueRotate: {Frequency: 660, Duration: 60 * time.Millisecond},
	tetris.CueClear:  {Frequency: 880, Duration: 180 * time.Millisecond},
}

// beepSounds plays cues on the system speaker. It implements tetris.SoundSink.
type beepSounds struct {
	volume float64
	logger *slog.Logger
}

// newBeepSounds initialises the speaker. Callers fall back to tetris.Silence
// when it fails.
func newBeepSounds(volume float64, logger *slog.Logger) (*beepSounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	return &beepSounds{volume: volume, logger: logger}, nil
}

// cueStreamer builds a finite sine streamer for t at the given linear volume.
func cueStreamer(t tone, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Frequency)
	if err != nil {
		return nil, err
	}
	s := beep.Take(sampleRate.N(t.Duration), sine)
	return &effects.Gain{Streamer: s, Gain: volume - 1}, nil
}

func (b *beepSounds) Play(c tetris.Cue) {
	t, ok := cueTones[c]
	if !ok {
		return
	}
	s, err := cueStreamer(t, b.volume)
	if err != nil {
		b.logger.Warn("building cue", "cue", c, "error", err)
		return
	}
	speaker.Play(s)
}

func (b *beepSounds) Close() {
	speaker.Close()
}
