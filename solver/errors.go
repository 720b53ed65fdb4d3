package solver

import "errors"

// ErrNoSolution is returned when backtracking search exhausts every branch
// without finding a grid consistent with all three pattern families.
var ErrNoSolution = errors.New("hexcrossword: no solution")

// ErrPatternCount is returned when a pattern slice's length does not match
// the 2n-1 lines a side-n hexagon requires along that axis.
var ErrPatternCount = errors.New("hexcrossword: wrong number of patterns for side length")
