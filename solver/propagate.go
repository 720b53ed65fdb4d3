package solver

import (
	"github.com/dneiter/hexcrossword/hexgrid"
	"github.com/dneiter/hexcrossword/regex"
)

// state is the solver's mutable working set for one Solve call: the grid
// and candidate sets it owns, plus the precomputed geometry and matchers
// needed to check a cell's three crossing lines. Sweeps/SearchNodes are
// running counters surfaced to the caller as Solution diagnostics.
type state struct {
	hex *hexgrid.Hex

	x, y, z []lineMatcher

	grid       hexgrid.Grid
	candidates CandidateGrid

	sweeps      int
	searchNodes int
}

// propagate runs a fixpoint sweep: for every unknown cell, row-major, drop
// candidates that can no longer satisfy all three crossing patterns, and fix
// any cell whose candidate set collapses to a singleton. It repeats until a
// sweep makes no progress. Returns whether every cell is now solved; an
// empty candidate set is a contradiction the caller detects on its next
// scan, never surfaced here.
func (s *state) propagate() bool {
	for {
		s.sweeps++
		progress := false

		for y := 0; y < s.hex.NumRows(); y++ {
			for x := 0; x < s.hex.RowLen(y); x++ {
				if s.grid[y][x] != regex.Wildcard {
					continue
				}

				cell := hexgrid.Coord{Row: y, Col: x}
				var kept []byte
				for _, c := range s.candidates[y][x] {
					s.grid[y][x] = c
					if s.crossingLinesAccept(cell) {
						kept = append(kept, c)
					}
				}
				s.grid[y][x] = regex.Wildcard
				s.candidates[y][x] = kept

				if len(kept) == 1 {
					s.grid[y][x] = kept[0]
					progress = true
				}
			}
		}

		if !progress {
			break
		}
	}

	return s.grid.Solved()
}

// crossingLinesAccept checks all three lines crossing cell against their
// patterns, with every other unknown cell on those lines still read as a
// wildcard from s.grid.
func (s *state) crossingLinesAccept(cell hexgrid.Coord) bool {
	xl, yl, zl := s.hex.CrossingLines(cell)

	if !s.x[xl].matches(s.grid.Line(s.hex.LineCells(hexgrid.AxisX, xl))) {
		return false
	}
	if !s.y[yl].matches(s.grid.Line(s.hex.LineCells(hexgrid.AxisY, yl))) {
		return false
	}
	if !s.z[zl].matches(s.grid.Line(s.hex.LineCells(hexgrid.AxisZ, zl))) {
		return false
	}
	return true
}
