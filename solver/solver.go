// Package solver implements the hexcrossword CORE's constraint-propagation
// and backtracking search: it owns a grid and per-cell candidate sets,
// narrows them by probing partial lines against the three crossing
// patterns through package hexgrid's geometry, and branches when
// propagation stalls without a contradiction. Grounded on the fixpoint
// loop and backtracking shape of the original regexp-crossword solver
// (RegexCrossword._make_deductions / _backtracking_solve), reworked into
// Go value types with explicit snapshot/restore instead of Python's
// copy.deepcopy.
package solver

import (
	"github.com/dneiter/hexcrossword/hexgrid"
	"github.com/dneiter/hexcrossword/regex"
)

// Solution is the result of a successful Solve: the filled grid plus
// lightweight diagnostics about how much work the solve took.
type Solution struct {
	Grid        hexgrid.Grid
	Sweeps      int
	SearchNodes int
}

// Solve finds an assignment of uppercase letters to every cell of a
// side-n hexagon such that every x/y/z line, read in its axis's canonical
// direction, is accepted by its corresponding pattern. xPatterns,
// yPatterns and zPatterns must each have length 2n-1. Returns
// ErrNoSolution if no such assignment exists.
func Solve(n int, xPatterns, yPatterns, zPatterns []*regex.Pattern) (*Solution, error) {
	lines := 2*n - 1
	if len(xPatterns) != lines || len(yPatterns) != lines || len(zPatterns) != lines {
		return nil, ErrPatternCount
	}

	s := &state{
		hex:        hexgrid.New(n),
		x:          newLineMatchers(xPatterns),
		y:          newLineMatchers(yPatterns),
		z:          newLineMatchers(zPatterns),
		grid:       hexgrid.NewGrid(n),
		candidates: NewCandidateGrid(n),
	}

	if !s.search() {
		return nil, ErrNoSolution
	}

	return &Solution{Grid: s.grid, Sweeps: s.sweeps, SearchNodes: s.searchNodes}, nil
}
