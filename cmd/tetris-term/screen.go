package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// Pixel to terminal cell scale. A 30px board cell becomes two columns by
// one row, which keeps blocks roughly square in most terminal fonts.
const (
	pixelsPerColumn = tetris.CellSize / 2
	pixelsPerRow    = tetris.CellSize
)

// screenRenderer maps the game's pixel-space rectangles onto terminal cells
// filled with the rectangle's color.
type screenRenderer struct {
	screen tcell.Screen
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellSpan converts a pixel extent to a count of terminal cells. The board
// draws 29px squares in 30px slots, so a one-pixel gap rounds up.
func cellSpan(pixels, scale int) int {
	n := (pixels + 1) / scale
	if n < 1 {
		return 1
	}
	return n
}

func (r screenRenderer) DrawRect(x, y, w, h int, c color.RGBA) {
	style := tcell.StyleDefault.Background(toColor(c))
	col, row := x/pixelsPerColumn, y/pixelsPerRow
	for dy := 0; dy < cellSpan(h, pixelsPerRow); dy++ {
		for dx := 0; dx < cellSpan(w, pixelsPerColumn); dx++ {
			r.screen.SetContent(col+dx, row+dy, ' ', nil, style)
		}
	}
}

// drawText writes s starting at the terminal cell under pixel (x, y).
func (r screenRenderer) drawText(x, y int, s string, style tcell.Style) {
	col, row := x/pixelsPerColumn, y/pixelsPerRow
	for i, ch := range []rune(s) {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}

// drawFrame renders the HUD and the board. The layout uses the same pixel
// coordinates as the desktop window.
func drawFrame(screen tcell.Screen, g *tetris.Game) {
	background := tcell.StyleDefault.Background(toColor(tetris.DarkBlue))
	screen.Fill(' ', background)

	r := screenRenderer{screen: screen}
	label := background.Foreground(tcell.ColorWhite).Bold(true)
	panel := tcell.StyleDefault.Background(toColor(tetris.LightBlue)).Foreground(tcell.ColorWhite)

	r.drawText(365, 15, "Score", label)
	r.DrawRect(320, 55, 170, 60, tetris.LightBlue)
	r.drawText(335, 60, fmt.Sprintf("%d", g.Score()), panel)

	r.drawText(370, 175, "Next", label)
	r.DrawRect(320, 215, 170, 180, tetris.LightBlue)

	g.Draw(r)

	if g.Over() {
		r.drawText(320, 450, "GAME OVER", label)
		r.drawText(320, 480, "press any key", background.Foreground(tcell.ColorWhite))
	}
}
