package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	ScreenWidth  = 500
	ScreenHeight = 620
)

// screenRenderer draws game rectangles onto an ebiten image.
type screenRenderer struct {
	dst *ebiten.Image
}

func (r screenRenderer) DrawRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// drawHUD draws the score and next panels and the game over banner.
func drawHUD(screen *ebiten.Image, g *tetris.Game) {
	r := screenRenderer{dst: screen}

	ebitenutil.DebugPrintAt(screen, "Score", 365, 15)
	r.DrawRect(320, 55, 170, 60, tetris.LightBlue)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", g.Score()), 330, 75)

	ebitenutil.DebugPrintAt(screen, "Next", 370, 175)
	r.DrawRect(320, 215, 170, 180, tetris.LightBlue)

	if g.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 320, 450)
		ebitenutil.DebugPrintAt(screen, "press any key", 320, 470)
	}
}

// drawFrame renders one full frame: background, HUD, then the board and blocks.
func drawFrame(screen *ebiten.Image, g *tetris.Game) {
	screen.Fill(tetris.DarkBlue)
	drawHUD(screen, g)
	g.Draw(screenRenderer{dst: screen})
}
