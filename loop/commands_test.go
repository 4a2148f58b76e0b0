package loop_test

import (
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
)

func TestDeferRunsAfterAllSystems(t *testing.T) {
	var seen []int
	value := 0

	scheduler := loop.NewScheduler()
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() { seen = append(seen, value) })
		assert.Equal(t, 1, frame.Commands.Len())
	}))
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		value = 42
	}))

	scheduler.Once(1)
	assert.Equal(t, []int{42}, seen)
}

func TestDeferOrderAndNesting(t *testing.T) {
	var order []string

	scheduler := loop.NewScheduler()
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			order = append(order, "first")
			frame.Commands.Defer(func() { order = append(order, "nested") })
		})
		frame.Commands.Defer(func() { order = append(order, "second") })
	}))

	scheduler.Once(1)
	assert.Equal(t, []string{"first", "second", "nested"}, order)
}

func TestEachFrameGetsFreshCommands(t *testing.T) {
	calls := 0
	frames := 0

	scheduler := loop.NewScheduler()
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		assert.Equal(t, 0, frame.Commands.Len())
		frames++
		if frames == 1 {
			frame.Commands.Defer(func() { calls++ })
		}
	}))

	scheduler.Once(1)
	scheduler.Once(1)
	assert.Equal(t, 1, calls)
}
