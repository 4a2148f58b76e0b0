package tetris_test

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// ExampleGame shows the per-frame driving pattern: one key event and the
// current clock reading go in, and the game moves, locks and scores itself.
func ExampleGame() {
	game := tetris.New(tetris.WithRand(rand.New(rand.NewPCG(1, 2))))

	var now time.Duration
	for _, key := range []tetris.Key{tetris.KeyDown, tetris.KeyDown, tetris.KeyNone, tetris.KeyDown} {
		now += 50 * time.Millisecond
		game.Update(key, now)
	}

	fmt.Println("score:", game.Score())
	fmt.Println("row:", game.Current().Offset().Row-tetris.ShapeOf(game.Current().Kind()).Spawn().Row)
	fmt.Println("state:", game.State())

	// Output:
	// score: 3
	// row: 4
	// state: playing
}

// ExampleGrid_ClearFullRows removes a full bottom row; the partial row above
// it drops into its place.
func ExampleGrid_ClearFullRows() {
	var g tetris.Grid
	for column := 0; column < tetris.Columns; column++ {
		g.Set(19, column, tetris.KindI)
	}
	g.Set(18, 0, tetris.KindT)

	fmt.Println("cleared:", g.ClearFullRows())
	lines := strings.Split(g.String(), "\n")
	fmt.Println(strings.Join(lines[17:20], "\n"))

	// Output:
	// cleared: 1
	// ..........
	// ..........
	// T.........
}

// ExampleBlock_Rotate prints the cells of a T block in its first two
// orientations.
func ExampleBlock_Rotate() {
	b := tetris.NewBlock(tetris.KindT)
	fmt.Println(b.Cells())
	b.Rotate()
	fmt.Println(b.Cells())
	b.UndoRotation()
	fmt.Println(b.Rotation())

	// Output:
	// [{0 4} {1 3} {1 4} {1 5}]
	// [{0 4} {1 4} {1 5} {2 4}]
	// 0
}

func ExampleLineClearPoints() {
	for rows := 1; rows <= 4; rows++ {
		fmt.Printf("%d: %d\n", rows, tetris.LineClearPoints(rows))
	}

	// Output:
	// 1: 100
	// 2: 300
	// 3: 500
	// 4: 0
}
