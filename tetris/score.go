package tetris

// SoftDropPoints is awarded for every successful manual down move.
const SoftDropPoints = 1

// LineClearPoints returns the score for clearing rows in a single lock.
// Clearing four rows awards nothing; there is no bonus for it.
func LineClearPoints(rows int) int {
	switch rows {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	default:
		return 0
	}
}
