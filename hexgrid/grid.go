package hexgrid

import "github.com/dneiter/hexcrossword/regex"

// Grid is a hexagon of side n: 2n-1 rows, row y holding RowLen(n, y)
// cells. Each cell holds either an uppercase letter or the wildcard
// sentinel regex.Wildcard, meaning "not yet determined".
type Grid [][]byte

// NewGrid returns a side-n hexagon with every cell unknown.
func NewGrid(n int) Grid {
	rows := 2*n - 1
	g := make(Grid, rows)
	for y := 0; y < rows; y++ {
		row := make([]byte, RowLen(n, y))
		for x := range row {
			row[x] = regex.Wildcard
		}
		g[y] = row
	}
	return g
}

// Clone makes an independent deep copy, used by the solver at every
// branching point so snapshot/restore never aliases across recursion.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]byte(nil), row...)
	}
	return out
}

// Line extracts the bytes of the cells in order, e.g. for feeding a
// pattern's Match.
func (g Grid) Line(cells []Coord) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = g[c.Row][c.Col]
	}
	return out
}

// Solved reports whether every cell holds a concrete letter.
func (g Grid) Solved() bool {
	for _, row := range g {
		for _, c := range row {
			if c == regex.Wildcard {
				return false
			}
		}
	}
	return true
}

// Strings renders the grid as one string per row, for presentation layers.
func (g Grid) Strings() []string {
	out := make([]string, len(g))
	for y, row := range g {
		out[y] = string(row)
	}
	return out
}
