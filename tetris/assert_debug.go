//go:build tetrisdebug

package tetris

import "fmt"

func assertInside(row, column int) {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d grid", row, column, Rows, Columns))
	}
}
