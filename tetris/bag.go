package tetris

import "math/rand/v2"

// Bag hands out piece kinds so that each kind appears exactly once in every
// run of seven draws.
type Bag struct {
	remaining []Kind
	rng       *rand.Rand
}

// NewBag returns a full bag drawing from rng. A nil rng uses the global
// source.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.Refill()
	return b
}

// Refill restores all seven kinds, discarding whatever was left.
func (b *Bag) Refill() {
	b.remaining = append(b.remaining[:0], Kinds()...)
}

// Draw removes and returns a uniformly random remaining kind, refilling
// first if the bag is empty.
func (b *Bag) Draw() Kind {
	if len(b.remaining) == 0 {
		b.Refill()
	}

	i := b.intN(len(b.remaining))
	k := b.remaining[i]
	b.remaining = append(b.remaining[:i], b.remaining[i+1:]...)
	return k
}

// Len returns how many kinds are left before the next refill.
func (b *Bag) Len() int {
	return len(b.remaining)
}

// Remaining returns a copy of the kinds not yet drawn.
func (b *Bag) Remaining() []Kind {
	out := make([]Kind, len(b.remaining))
	copy(out, b.remaining)
	return out
}

func (b *Bag) intN(n int) int {
	if b.rng == nil {
		return rand.IntN(n)
	}
	return b.rng.IntN(n)
}
