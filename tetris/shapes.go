package tetris

// Kind identifies a tetromino. The zero value marks an empty grid cell; the
// seven piece kinds use ids 1 through 7, which double as palette indexes.
type Kind uint8

const (
	KindNone Kind = iota
	KindL
	KindJ
	KindI
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of playable tetromino kinds.
const KindCount = 7

var kindNames = [...]string{"-", "L", "J", "I", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Valid reports whether k is one of the seven piece kinds.
func (k Kind) Valid() bool {
	return k >= KindL && k <= KindZ
}

// Kinds returns every piece kind in id order.
func Kinds() []Kind {
	return []Kind{KindL, KindJ, KindI, KindO, KindS, KindT, KindZ}
}

// MaxRotationStates bounds the number of orientations a shape may define.
const MaxRotationStates = 4

// Shape is the immutable catalog entry for a kind: its rotation states and
// the translation applied when a block of that kind spawns.
type Shape struct {
	kind       Kind
	states     [MaxRotationStates][4]Position
	stateCount int
	spawn      Position
}

// Kind returns the kind this shape belongs to.
func (s *Shape) Kind() Kind {
	return s.kind
}

// StateCount returns how many rotation states the shape defines.
func (s *Shape) StateCount() int {
	return s.stateCount
}

// State returns the relative cells of rotation state i.
func (s *Shape) State(i int) [4]Position {
	return s.states[i]
}

// Spawn returns the offset that centers a new block above the grid.
func (s *Shape) Spawn() Position {
	return s.spawn
}

func p(row, column int) Position {
	return Position{Row: row, Column: column}
}

var catalog = [KindCount + 1]Shape{
	KindL: {
		kind: KindL,
		states: [MaxRotationStates][4]Position{
			{p(0, 2), p(1, 0), p(1, 1), p(1, 2)},
			{p(0, 1), p(1, 1), p(2, 1), p(2, 2)},
			{p(0, 2), p(1, 0), p(1, 1), p(1, 2)},
			{p(0, 0), p(0, 1), p(1, 1), p(2, 1)},
		},
		stateCount: 4,
		spawn:      p(0, 3),
	},
	KindJ: {
		kind: KindJ,
		states: [MaxRotationStates][4]Position{
			{p(0, 0), p(1, 0), p(1, 1), p(1, 2)},
			{p(0, 1), p(0, 2), p(1, 1), p(2, 1)},
			{p(1, 0), p(1, 1), p(1, 2), p(2, 2)},
			{p(0, 1), p(1, 1), p(2, 0), p(2, 1)},
		},
		stateCount: 4,
		spawn:      p(0, 3),
	},
	KindI: {
		kind: KindI,
		states: [MaxRotationStates][4]Position{
			{p(1, 0), p(1, 1), p(1, 2), p(1, 3)},
			{p(0, 2), p(1, 2), p(2, 2), p(3, 2)},
			{p(2, 0), p(2, 1), p(2, 2), p(2, 3)},
			{p(0, 1), p(1, 1), p(2, 1), p(3, 1)},
		},
		stateCount: 4,
		spawn:      p(-1, 3),
	},
	KindO: {
		kind: KindO,
		states: [MaxRotationStates][4]Position{
			{p(0, 0), p(0, 1), p(1, 0), p(1, 1)},
		},
		stateCount: 1,
		spawn:      p(0, 4),
	},
	KindS: {
		kind: KindS,
		states: [MaxRotationStates][4]Position{
			{p(0, 1), p(0, 2), p(1, 0), p(1, 1)},
			{p(0, 1), p(1, 1), p(1, 2), p(2, 2)},
			{p(1, 1), p(1, 2), p(2, 0), p(2, 1)},
			{p(0, 0), p(1, 0), p(1, 1), p(2, 1)},
		},
		stateCount: 4,
		spawn:      p(0, 3),
	},
	KindT: {
		kind: KindT,
		states: [MaxRotationStates][4]Position{
			{p(0, 1), p(1, 0), p(1, 1), p(1, 2)},
			{p(0, 1), p(1, 1), p(1, 2), p(2, 1)},
			{p(1, 0), p(1, 1), p(1, 2), p(2, 1)},
			{p(0, 1), p(1, 0), p(1, 1), p(2, 1)},
		},
		stateCount: 4,
		spawn:      p(0, 3),
	},
	KindZ: {
		kind: KindZ,
		states: [MaxRotationStates][4]Position{
			{p(0, 0), p(0, 1), p(1, 1), p(1, 2)},
			{p(0, 2), p(1, 1), p(1, 2), p(2, 1)},
			{p(1, 0), p(1, 1), p(2, 1), p(2, 2)},
			{p(0, 1), p(1, 0), p(1, 1), p(2, 0)},
		},
		stateCount: 4,
		spawn:      p(0, 3),
	},
}

// ShapeOf returns the catalog entry for k. It panics if k is not a piece kind.
func ShapeOf(k Kind) *Shape {
	if !k.Valid() {
		panic("tetris: no shape for kind " + k.String())
	}
	return &catalog[k]
}
