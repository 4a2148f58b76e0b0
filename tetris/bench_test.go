package tetris_test

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkClearFullRows(b *testing.B) {
	var full tetris.Grid
	for row := tetris.Rows - 4; row < tetris.Rows; row++ {
		for column := 0; column < tetris.Columns; column++ {
			full.Set(row, column, tetris.KindI)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := full
		g.ClearFullRows()
	}
}

func BenchmarkGameUpdate(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	game := tetris.New(
		tetris.WithRand(rand.New(rand.NewPCG(3, 4))),
		tetris.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	keys := []tetris.Key{tetris.KeyNone, tetris.KeyLeft, tetris.KeyRight, tetris.KeyDown, tetris.KeyUp}

	var now time.Duration
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		now += time.Second / 60
		game.Update(keys[rng.IntN(len(keys))], now)
	}
}

func BenchmarkBlockCells(b *testing.B) {
	block := tetris.NewBlock(tetris.KindT)
	for i := 0; i < b.N; i++ {
		block.Rotate()
		_ = block.Cells()
	}
}
