// Package tetris implements the rules of a falling-block puzzle game: the
// shape catalog, the playfield grid, the 7-bag randomizer and the game
// controller that moves, locks and scores blocks. Frontends plug in rendering
// and audio through small interfaces.
package tetris

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// State is the controller's play state.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// Game owns the grid, the active and queued blocks, the bag and the score.
// It is driven one frame at a time and is not safe for concurrent use.
type Game struct {
	state  State
	score  int
	lines  int
	pieces int

	grid    Grid
	bag     *Bag
	current Block
	next    Block
	drop    Cooldown
	now     time.Duration

	sounds  SoundSink
	stats   *Stats
	session uuid.UUID
	logger  *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRand draws pieces from rng, making a game reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.bag = NewBag(rng)
	}
}

// WithSounds routes cues to s.
func WithSounds(s SoundSink) Option {
	return func(g *Game) {
		if s != nil {
			g.sounds = s
		}
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithDropInterval changes how often Tick moves the block down.
func WithDropInterval(d time.Duration) Option {
	return func(g *Game) {
		g.drop.Interval = d
	}
}

// WithStats aggregates counters into s instead of a private Stats.
func WithStats(s *Stats) Option {
	return func(g *Game) {
		g.stats = s
	}
}

// New creates a game in the playing state with an active and a queued block.
func New(opts ...Option) *Game {
	g := &Game{
		bag:    NewBag(nil),
		drop:   Cooldown{Interval: DefaultDropInterval},
		sounds: Silence,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.stats == nil {
		g.stats = NewStats()
	}

	g.start()
	return g
}

func (g *Game) start() {
	g.session = uuid.New()
	g.current = g.spawn()
	g.next = g.spawn()
	g.logger.Debug("session started", "session", g.session, "current", g.current.Kind(), "next", g.next.Kind())
}

func (g *Game) spawn() Block {
	k := g.bag.Draw()
	g.stats.recordSpawn(k)
	return NewBlock(k)
}

// Reset clears the board, refills the bag, zeroes the score and starts a new
// session. The drop timer restarts from the last Tick time. Stats are kept.
func (g *Game) Reset() {
	g.grid.Reset()
	g.drop.Reset(g.now)
	g.bag.Refill()
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.state = StatePlaying
	g.start()
}

// HandleInput applies one key event. While the game is over any key resets
// it; the key is consumed by the reset.
func (g *Game) HandleInput(k Key) {
	if g.state == StateGameOver {
		if k != KeyNone {
			g.Reset()
		}
		return
	}

	switch k {
	case KeyLeft:
		g.MoveLeft()
	case KeyRight:
		g.MoveRight()
	case KeyDown:
		g.MoveDown(true)
	case KeyUp:
		g.Rotate()
	}
}

// Tick moves the block down once the drop interval has elapsed at now.
// Timer drops award no points.
func (g *Game) Tick(now time.Duration) {
	g.now = now
	if g.drop.Ready(now) {
		g.MoveDown(false)
	}
}

// Update runs one frame: the key event first, then the drop timer.
func (g *Game) Update(k Key, now time.Duration) {
	g.HandleInput(k)
	g.Tick(now)
}

// MoveLeft shifts the active block one column left if it fits.
func (g *Game) MoveLeft() {
	g.shift(0, -1)
}

// MoveRight shifts the active block one column right if it fits.
func (g *Game) MoveRight() {
	g.shift(0, 1)
}

func (g *Game) shift(rows, columns int) {
	if g.state != StatePlaying {
		return
	}
	g.current.Move(rows, columns)
	if !g.fits(g.current) {
		g.current.Move(-rows, -columns)
	}
}

// MoveDown drops the active block one row. If it cannot move it locks in
// place instead. A manual move that succeeds scores SoftDropPoints.
func (g *Game) MoveDown(manual bool) {
	if g.state != StatePlaying {
		return
	}
	g.current.Move(1, 0)
	if !g.fits(g.current) {
		g.current.Move(-1, 0)
		g.lockBlock()
		return
	}
	if manual {
		g.score += SoftDropPoints
	}
}

// Rotate turns the active block if the new orientation fits.
func (g *Game) Rotate() {
	if g.state != StatePlaying {
		return
	}
	g.current.Rotate()
	if !g.fits(g.current) {
		g.current.UndoRotation()
		return
	}
	g.sounds.Play(CueRotate)
}

// fits reports whether every cell of b is inside the grid and unoccupied.
// Bounds are checked before occupancy for each cell.
func (g *Game) fits(b Block) bool {
	for _, cell := range b.Cells() {
		if g.grid.IsCellOutside(cell.Row, cell.Column) {
			return false
		}
		if !g.grid.IsCellEmpty(cell.Row, cell.Column) {
			return false
		}
	}
	return true
}

func (g *Game) lockBlock() {
	kind := g.current.Kind()
	for _, cell := range g.current.Cells() {
		g.grid.Set(cell.Row, cell.Column, kind)
	}
	g.pieces++

	g.current = g.next
	over := !g.fits(g.current)
	if over {
		g.state = StateGameOver
	}
	g.next = g.spawn()

	rows := g.grid.ClearFullRows()
	g.stats.recordLock(rows)
	if rows > 0 {
		g.sounds.Play(CueClear)
		g.score += LineClearPoints(rows)
		g.lines += rows
	}

	if over {
		g.stats.recordGameOver(g.score)
		g.logger.Info("game over",
			"session", g.session,
			"score", g.score,
			"lines", g.lines,
			"pieces", g.pieces,
		)
	}
}

// Draw renders the board, the active block and the queued block.
func (g *Game) Draw(r Renderer) {
	g.grid.Draw(r)
	g.current.Draw(r, BoardOffsetX, BoardOffsetY)
	x, y := PreviewOffset(g.next.Kind())
	g.next.Draw(r, x, y)
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lines returns the rows cleared this session.
func (g *Game) Lines() int { return g.lines }

// Pieces returns the blocks locked this session.
func (g *Game) Pieces() int { return g.pieces }

// State returns the play state.
func (g *Game) State() State { return g.state }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.state == StateGameOver }

// Grid returns a copy of the board.
func (g *Game) Grid() Grid { return g.grid }

// Current returns the active block.
func (g *Game) Current() Block { return g.current }

// Next returns the queued block.
func (g *Game) Next() Block { return g.next }

// BagRemaining returns the kinds left in the bag.
func (g *Game) BagRemaining() []Kind { return g.bag.Remaining() }

// Stats returns the counters the game reports into.
func (g *Game) Stats() *Stats { return g.stats }

// Session identifies the current play session. It changes on every Reset.
func (g *Game) Session() uuid.UUID { return g.session }

// DropInterval returns the auto drop interval.
func (g *Game) DropInterval() time.Duration { return g.drop.Interval }
