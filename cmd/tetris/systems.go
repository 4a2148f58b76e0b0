package main

import (
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies at most one queued key event per frame. Later keys stay
// queued for the following frames. A key is dropped while the debug overlay
// has keyboard focus.
type InputSystem struct {
	Game    *tetris.Game
	Source  tetris.InputSource
	Overlay *debugui.InputState
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	key := s.Source.Poll()
	if key == tetris.KeyNone {
		return
	}
	if s.Overlay != nil && s.Overlay.WantCaptureKeyboard {
		return
	}
	s.Game.HandleInput(key)
}

// GravitySystem drops the active block on the game's drop interval. The
// desktop build passes the scheduler as Clock so gravity follows simulated
// time.
type GravitySystem struct {
	Game  *tetris.Game
	Clock tetris.Clock
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Tick(s.Clock.Now())
}
