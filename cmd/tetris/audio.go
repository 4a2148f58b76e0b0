package main

import (
	"encoding/binary"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = 44100

// tone describes a synthesized cue.
type tone struct {
	Frequency float64
	Duration  time.Duration
}

var cueTones = map[tetris.Cue]tone{
	tetris.CueRotate: {Frequency: 660, Duration: 60 * time.Millisecond},
	tetris.CueClear:  {Frequency: 880, Duration: 180 * time.Millisecond},
}

// synthesize renders a sine tone as 16-bit little endian stereo PCM, the
// format ebiten's audio players expect. A short linear fade at both ends
// avoids clicks.
func synthesize(t tone, rate int) []byte {
	samples := int(t.Duration.Seconds() * float64(rate))
	fade := rate / 200
	if fade > samples/2 {
		fade = samples / 2
	}

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		amp := 0.3
		switch {
		case i < fade:
			amp *= float64(i) / float64(fade)
		case i >= samples-fade:
			amp *= float64(samples-1-i) / float64(fade)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*t.Frequency*float64(i)/float64(rate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// ebitenSounds plays cues through an ebiten audio context. It implements
// tetris.SoundSink.
type ebitenSounds struct {
	players map[tetris.Cue]*audio.Player
	logger  *slog.Logger
}

func newEbitenSounds(volume float64, logger *slog.Logger) *ebitenSounds {
	ctx := audio.NewContext(sampleRate)
	s := &ebitenSounds{
		players: make(map[tetris.Cue]*audio.Player, len(cueTones)),
		logger:  logger,
	}
	for cue, t := range cueTones {
		p := ctx.NewPlayerFromBytes(synthesize(t, sampleRate))
		p.SetVolume(volume)
		s.players[cue] = p
	}
	return s
}

func (s *ebitenSounds) Play(c tetris.Cue) {
	p, ok := s.players[c]
	if !ok {
		s.logger.Debug("no player for cue", "cue", c)
		return
	}
	if err := p.Rewind(); err != nil {
		s.logger.Warn("rewinding cue", "cue", c, "error", err)
		return
	}
	p.Play()
}
