package solver

import "github.com/dneiter/hexcrossword/regex"

// search propagates to a fixpoint, fails on a contradiction (an empty
// candidate set), otherwise branches on the unknown cell with the smallest
// candidate set (ties broken by row-major scan order) and recurses on each
// candidate in order, restoring a fresh snapshot before every attempt so
// branches never alias each other's grid or candidates.
func (s *state) search() bool {
	if s.propagate() {
		return true
	}

	row, col, size := -1, -1, -1
	for y := 0; y < s.hex.NumRows(); y++ {
		for x := 0; x < s.hex.RowLen(y); x++ {
			if s.grid[y][x] != regex.Wildcard {
				continue
			}
			n := len(s.candidates[y][x])
			if n == 0 {
				return false // contradiction
			}
			if size == -1 || n < size {
				row, col, size = y, x, n
			}
		}
	}
	if row == -1 {
		// No unknown cell remains but propagate() reported unsolved: can't
		// happen given the candidate/grid coupling invariant, but treat it
		// as solved rather than branching on nothing.
		return true
	}

	options := append([]byte(nil), s.candidates[row][col]...)
	gridSnapshot := s.grid.Clone()
	candidatesSnapshot := s.candidates.Clone()

	for _, c := range options {
		s.searchNodes++
		s.grid = gridSnapshot.Clone()
		s.candidates = candidatesSnapshot.Clone()
		s.grid[row][col] = c
		s.candidates[row][col] = []byte{c}

		if s.search() {
			return true
		}
	}

	return false
}
