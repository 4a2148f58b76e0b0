package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func runGames(t *testing.T, frames int) (*tetris.Stats, *loop.Scheduler, []*tetris.Game) {
	t.Helper()
	stats := tetris.NewStats()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games := newGames(4, 9, 20*time.Millisecond, stats, logger)

	scheduler := loop.NewScheduler()
	scheduler.Register(&PlayerSystem{Games: games, Rand: rand.New(rand.NewPCG(9, 9)), Rate: 0.5})
	scheduler.Register(&GravitySystem{Games: games})
	scheduler.Register(&RestartSystem{Games: games})

	for i := 0; i < frames; i++ {
		scheduler.Once(1.0 / 60)
	}
	return stats, scheduler, games
}

func TestStressSystemsPlayAndRestart(t *testing.T) {
	stats, scheduler, games := runGames(t, 20000)

	assert.Equal(t, int64(20000), scheduler.GetStats().Frames)
	assert.Greater(t, stats.Locked, 0)
	assert.Greater(t, stats.Games, 0, "fast drops end games within the run")
	for _, g := range games {
		assert.False(t, g.Over(), "finished games are restarted at the end of the frame")
	}
}

func TestReportGenerate(t *testing.T) {
	stats, scheduler, _ := runGames(t, 600)

	report := &Report{
		Duration:   time.Second,
		Games:      4,
		Seed:       9,
		Timestep:   time.Second / 60,
		UpdateTime: Stats{Samples: []time.Duration{time.Millisecond}},
	}
	report.UpdateTime.Finalize()
	report.Collect(stats, scheduler.GetStats())

	require.Len(t, report.Pieces, tetris.KindCount)
	total := 0
	for _, row := range report.Pieces {
		total += row.Count
	}
	assert.Equal(t, stats.TotalSpawned(), total)
	require.Len(t, report.Systems, 3)
	assert.Equal(t, "PlayerSystem", report.Systems[0].Name)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Tetris Stress Test Report")
	assert.Contains(t, out, "**Concurrent Games:** 4")
	assert.Contains(t, out, "**PlayerSystem:**")
	assert.Contains(t, out, "### Pieces Spawned")
	assert.Contains(t, out, "- T: ")
	assert.NotContains(t, out, "GC Pause Durations")
}
