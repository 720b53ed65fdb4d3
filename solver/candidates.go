package solver

import "github.com/dneiter/hexcrossword/hexgrid"

// alphabet is the full candidate set a freshly created unknown cell starts
// with: every uppercase letter, in a stable order so that retained
// candidates stay reproducibly ordered across sweeps.
var alphabet = func() []byte {
	letters := make([]byte, 26)
	for i := range letters {
		letters[i] = 'A' + byte(i)
	}
	return letters
}()

// CandidateGrid is parallel to a hexgrid.Grid: each cell holds the set of
// letters still consistent with all three crossing patterns. A fixed cell's
// candidate set is exactly that one letter; a singleton candidate set must
// be written into the grid; the set never grows, only shrinks.
type CandidateGrid [][][]byte

// NewCandidateGrid returns every cell initialized to the full alphabet.
func NewCandidateGrid(n int) CandidateGrid {
	rows := 2*n - 1
	cg := make(CandidateGrid, rows)
	for y := 0; y < rows; y++ {
		row := make([][]byte, hexgrid.RowLen(n, y))
		for x := range row {
			row[x] = append([]byte(nil), alphabet...)
		}
		cg[y] = row
	}
	return cg
}

// Clone makes an independent deep copy, used by the solver at every
// branching point.
func (cg CandidateGrid) Clone() CandidateGrid {
	out := make(CandidateGrid, len(cg))
	for y, row := range cg {
		outRow := make([][]byte, len(row))
		for x, cell := range row {
			outRow[x] = append([]byte(nil), cell...)
		}
		out[y] = outRow
	}
	return out
}
