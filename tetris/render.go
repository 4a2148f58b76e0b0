package tetris

import "image/color"

// Pixel geometry of the board.
const (
	CellSize     = 30
	BoardOffsetX = 11
	BoardOffsetY = 11
)

// Palette colors. Index 0 of the cell palette is the empty cell.
var (
	DarkGrey  = color.RGBA{R: 26, G: 31, B: 40, A: 255}
	Green     = color.RGBA{R: 47, G: 230, B: 23, A: 255}
	Red       = color.RGBA{R: 232, G: 18, B: 18, A: 255}
	Orange    = color.RGBA{R: 226, G: 116, B: 17, A: 255}
	Yellow    = color.RGBA{R: 237, G: 234, B: 4, A: 255}
	Purple    = color.RGBA{R: 116, G: 0, B: 247, A: 255}
	Cyan      = color.RGBA{R: 21, G: 204, B: 209, A: 255}
	Blue      = color.RGBA{R: 13, G: 64, B: 216, A: 255}
	LightBlue = color.RGBA{R: 59, G: 85, B: 162, A: 255}
	DarkBlue  = color.RGBA{R: 44, G: 44, B: 127, A: 255}
)

var cellColors = [KindCount + 1]color.RGBA{DarkGrey, Green, Red, Orange, Yellow, Purple, Cyan, Blue}

// CellColor returns the palette color for a grid cell value.
func CellColor(k Kind) color.RGBA {
	if int(k) >= len(cellColors) {
		return DarkGrey
	}
	return cellColors[k]
}

// PreviewOffset returns the pixel offset used to draw a queued block of kind
// k inside the "next" panel. The two wide kinds get their own positions so
// they appear centered.
func PreviewOffset(k Kind) (x, y int) {
	switch k {
	case KindI:
		return 255, 290
	case KindO:
		return 255, 280
	default:
		return 270, 270
	}
}

func drawCell(r Renderer, cell Position, offsetX, offsetY int, c color.RGBA) {
	r.DrawRect(
		cell.Column*CellSize+offsetX,
		cell.Row*CellSize+offsetY,
		CellSize-1,
		CellSize-1,
		c,
	)
}
