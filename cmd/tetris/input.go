package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
)

// keyboardInput turns the keys pressed since the last frame into a queue of
// game keys. It implements tetris.InputSource.
type keyboardInput struct {
	pressed []ebiten.Key
	queue   []tetris.Key
	quit    bool
}

// Collect reads the keys that went down this frame. Escape requests quit and
// is not forwarded to the game.
func (k *keyboardInput) Collect() {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.push(k.pressed)
}

func (k *keyboardInput) push(keys []ebiten.Key) {
	for _, key := range keys {
		if key == ebiten.KeyEscape {
			k.quit = true
			continue
		}
		k.queue = append(k.queue, mapKey(key))
	}
}

func (k *keyboardInput) Poll() tetris.Key {
	if len(k.queue) == 0 {
		return tetris.KeyNone
	}
	key := k.queue[0]
	k.queue = k.queue[1:]
	return key
}

func mapKey(key ebiten.Key) tetris.Key {
	switch key {
	case ebiten.KeyArrowLeft:
		return tetris.KeyLeft
	case ebiten.KeyArrowRight:
		return tetris.KeyRight
	case ebiten.KeyArrowDown:
		return tetris.KeyDown
	case ebiten.KeyArrowUp:
		return tetris.KeyUp
	default:
		return tetris.KeyOther
	}
}
