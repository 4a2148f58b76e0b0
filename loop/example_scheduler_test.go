package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// DropSystem feeds the scheduler's simulated clock into a game so blocks fall
// at the game's drop interval regardless of the frame rate.
type DropSystem struct {
	Game *tetris.Game
}

func (s *DropSystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Tick(frame.Elapsed)
}

// ExampleScheduler runs one simulated second of frames at 50 frames per
// second. With the default 200ms drop interval the active block falls five
// rows, and a deferred command reports the result after each frame.
func ExampleScheduler() {
	game := tetris.New()
	start := game.Current().Offset().Row

	scheduler := loop.NewScheduler()
	scheduler.Register(&DropSystem{Game: game})

	var rows int
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			rows = game.Current().Offset().Row - start
		})
	}))

	for i := 0; i < 50; i++ {
		scheduler.Once(0.02)
	}

	fmt.Println("elapsed:", scheduler.Elapsed().Round(time.Millisecond))
	fmt.Println("rows:", rows)
	fmt.Println("frames:", scheduler.GetStats().Frames)

	// Output:
	// elapsed: 1s
	// rows: 5
	// frames: 50
}
