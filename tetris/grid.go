package tetris

import (
	"fmt"
	"strings"
)

// Grid dimensions.
const (
	Rows    = 20
	Columns = 10
)

// Grid is the occupancy matrix of locked cells. A cell holds KindNone when
// empty, otherwise the kind of the block that locked there.
type Grid struct {
	cells [Rows][Columns]Kind
}

// IsCellOutside reports whether (row, column) lies outside the grid.
func (g *Grid) IsCellOutside(row, column int) bool {
	return row < 0 || row >= Rows || column < 0 || column >= Columns
}

// IsCellEmpty reports whether the cell holds no locked block. The cell must
// be inside the grid; check IsCellOutside first.
func (g *Grid) IsCellEmpty(row, column int) bool {
	assertInside(row, column)
	return g.cells[row][column] == KindNone
}

// Cell returns the kind locked at (row, column). Same precondition as
// IsCellEmpty.
func (g *Grid) Cell(row, column int) Kind {
	assertInside(row, column)
	return g.cells[row][column]
}

// Set writes k into (row, column). Same precondition as IsCellEmpty.
func (g *Grid) Set(row, column int, k Kind) {
	assertInside(row, column)
	g.cells[row][column] = k
}

// ClearFullRows removes every full row and compacts the rows above it,
// returning the number of rows removed. Rows are scanned bottom to top so a
// single pass handles any number of cleared rows.
func (g *Grid) ClearFullRows() int {
	completed := 0
	for row := Rows - 1; row >= 0; row-- {
		if g.isRowFull(row) {
			g.clearRow(row)
			completed++
		} else if completed > 0 {
			g.moveRowDown(row, completed)
		}
	}
	return completed
}

// Reset empties every cell.
func (g *Grid) Reset() {
	g.cells = [Rows][Columns]Kind{}
}

func (g *Grid) isRowFull(row int) bool {
	for column := 0; column < Columns; column++ {
		if g.cells[row][column] == KindNone {
			return false
		}
	}
	return true
}

func (g *Grid) clearRow(row int) {
	g.cells[row] = [Columns]Kind{}
}

func (g *Grid) moveRowDown(row, rows int) {
	g.cells[row+rows] = g.cells[row]
	g.cells[row] = [Columns]Kind{}
}

// Draw renders every cell, empty ones included, at the board offset.
func (g *Grid) Draw(r Renderer) {
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			k := g.cells[row][column]
			drawCell(r, Position{Row: row, Column: column}, BoardOffsetX, BoardOffsetY, CellColor(k))
		}
	}
}

// String prints the grid one row per line, '.' for empty cells and the kind
// letter otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns + 1))
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			k := g.cells[row][column]
			if k == KindNone {
				sb.WriteByte('.')
			} else {
				sb.WriteString(k.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads the format produced by String. Blank lines are ignored;
// there must be exactly Rows rows of Columns cells.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	row := 0
	for lineNo, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row >= Rows {
			return Grid{}, fmt.Errorf("line %d: more than %d rows", lineNo+1, Rows)
		}
		if len(line) != Columns {
			return Grid{}, fmt.Errorf("line %d: got %d cells, want %d", lineNo+1, len(line), Columns)
		}
		for column := 0; column < Columns; column++ {
			k, err := parseCell(line[column])
			if err != nil {
				return Grid{}, fmt.Errorf("line %d column %d: %w", lineNo+1, column, err)
			}
			g.cells[row][column] = k
		}
		row++
	}
	if row != Rows {
		return Grid{}, fmt.Errorf("got %d rows, want %d", row, Rows)
	}
	return g, nil
}

func parseCell(c byte) (Kind, error) {
	if c == '.' {
		return KindNone, nil
	}
	for _, k := range Kinds() {
		if k.String()[0] == c {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown cell %q", c)
}
