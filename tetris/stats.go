package tetris

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Stats accumulates counters across one or more games. A single Stats may be
// shared by several Game values to aggregate them.
type Stats struct {
	spawned *intmap.Map[Kind, int]
	clears  *intmap.Map[int, int]

	Lines     int
	Locked    int
	Games     int
	BestScore int
}

// NewStats returns empty counters.
func NewStats() *Stats {
	return &Stats{
		spawned: intmap.New[Kind, int](KindCount),
		clears:  intmap.New[int, int](4),
	}
}

// Spawned returns how many blocks of kind k have been drawn from the bag.
func (s *Stats) Spawned(k Kind) int {
	n, _ := s.spawned.Get(k)
	return n
}

// TotalSpawned returns the number of blocks drawn across all kinds.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, n := range s.spawned.All() {
		total += n
	}
	return total
}

// Clears returns how many locks cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// ClearSizes returns the distinct row counts seen in clears, ascending.
func (s *Stats) ClearSizes() []int {
	return slices.Sorted(s.clears.Keys())
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.Lines = 0
	s.Locked = 0
	s.Games = 0
	s.BestScore = 0
}

func (s *Stats) recordSpawn(k Kind) {
	s.spawned.Put(k, s.Spawned(k)+1)
}

func (s *Stats) recordLock(rowsCleared int) {
	s.Locked++
	if rowsCleared > 0 {
		s.clears.Put(rowsCleared, s.Clears(rowsCleared)+1)
		s.Lines += rowsCleared
	}
}

func (s *Stats) recordGameOver(score int) {
	s.Games++
	if score > s.BestScore {
		s.BestScore = score
	}
}
