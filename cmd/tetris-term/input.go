package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// mapKey translates a terminal key event. quit is set for q, Escape and
// Ctrl-C.
func mapKey(ev *tcell.EventKey) (key tetris.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.KeyNone, true
	case tcell.KeyLeft:
		return tetris.KeyLeft, false
	case tcell.KeyRight:
		return tetris.KeyRight, false
	case tcell.KeyDown:
		return tetris.KeyDown, false
	case tcell.KeyUp:
		return tetris.KeyUp, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return tetris.KeyNone, true
		case 'h':
			return tetris.KeyLeft, false
		case 'l':
			return tetris.KeyRight, false
		case 'j':
			return tetris.KeyDown, false
		case 'k':
			return tetris.KeyUp, false
		}
	}
	return tetris.KeyOther, false
}

// eventInput reads terminal events without blocking. It implements
// tetris.InputSource.
type eventInput struct {
	events <-chan tcell.Event
	quit   func()
	resize func()
}

func (in *eventInput) Poll() tetris.Key {
	for {
		select {
		case ev := <-in.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key, quit := mapKey(ev)
				if quit {
					in.quit()
					return tetris.KeyNone
				}
				return key
			case *tcell.EventResize:
				if in.resize != nil {
					in.resize()
				}
			}
		default:
			return tetris.KeyNone
		}
	}
}
