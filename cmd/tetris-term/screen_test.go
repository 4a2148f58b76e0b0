package main

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func background(t *testing.T, screen tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func text(screen tcell.Screen, x, y, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i], _, _, _ = screen.GetContent(x+i, y)
	}
	return string(runes)
}

func TestCellSpan(t *testing.T) {
	assert.Equal(t, 2, cellSpan(tetris.CellSize-1, pixelsPerColumn))
	assert.Equal(t, 1, cellSpan(tetris.CellSize-1, pixelsPerRow))
	assert.Equal(t, 11, cellSpan(170, pixelsPerColumn))
	assert.Equal(t, 6, cellSpan(180, pixelsPerRow))
	assert.Equal(t, 1, cellSpan(0, pixelsPerRow))
}

func TestRendererMapsBoardCells(t *testing.T) {
	screen := newSimScreen(t)
	r := screenRenderer{screen: screen}

	// Board cell (row 19, column 3) in pixel space.
	r.DrawRect(3*tetris.CellSize+tetris.BoardOffsetX, 19*tetris.CellSize+tetris.BoardOffsetY,
		tetris.CellSize-1, tetris.CellSize-1, tetris.Red)

	red := toColor(tetris.Red)
	assert.Equal(t, red, background(t, screen, 6, 19))
	assert.Equal(t, red, background(t, screen, 7, 19))
	assert.NotEqual(t, red, background(t, screen, 5, 19))
	assert.NotEqual(t, red, background(t, screen, 8, 19))
	assert.NotEqual(t, red, background(t, screen, 6, 18))
}

func TestDrawFrame(t *testing.T) {
	screen := newSimScreen(t)
	game := tetris.New(
		tetris.WithRand(rand.New(rand.NewPCG(5, 5))),
		tetris.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	game.HandleInput(tetris.KeyDown)
	game.HandleInput(tetris.KeyDown)

	drawFrame(screen, game)

	assert.Equal(t, "Score", text(screen, 24, 0, 5))
	assert.Equal(t, "2", text(screen, 22, 2, 1))
	assert.Equal(t, "Next", text(screen, 24, 5, 4))
	assert.Equal(t, toColor(tetris.LightBlue), background(t, screen, 21, 1))

	// The bottom-left board cell is empty and the HUD background surrounds it.
	assert.Equal(t, toColor(tetris.DarkGrey), background(t, screen, 0, 19))
	assert.Equal(t, toColor(tetris.DarkBlue), background(t, screen, 39, 19))

	// The active block is drawn in its kind's color.
	cell := game.Current().Cells()[0]
	want := toColor(tetris.CellColor(game.Current().Kind()))
	assert.Equal(t, want, background(t, screen, cell.Column*2, cell.Row))
}
