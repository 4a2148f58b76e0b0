package tetris

// Position is a (row, column) cell coordinate. Row 0 is the top of the grid.
type Position struct {
	Row    int
	Column int
}

// Add returns p translated by the given row and column deltas.
func (p Position) Add(rows, columns int) Position {
	return Position{Row: p.Row + rows, Column: p.Column + columns}
}
