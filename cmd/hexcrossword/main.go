// Command hexcrossword reads a hexagonal regex-crossword puzzle and prints
// its solved grid. This package owns all I/O; the regex/hexgrid/solver
// packages never touch a file, a flag, or stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dneiter/hexcrossword/hexgrid"
	"github.com/dneiter/hexcrossword/regex"
	"github.com/dneiter/hexcrossword/solver"
)

// Usage: hexcrossword -puzzle <file> [-timeout <duration>]
// With no -puzzle, the puzzle JSON is read from stdin.
func main() {
	puzzlePath := flag.String("puzzle", "", "path to a puzzle JSON file (default: stdin)")
	timeout := flag.Duration("timeout", 0, "abort the search after this long (0 disables)")
	flag.Parse()

	r := os.Stdin
	if *puzzlePath != "" {
		f, err := os.Open(*puzzlePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: read puzzle file: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		r = f
	}

	p, err := loadPuzzle(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	xPatterns, err := compilePatterns("x", p.X)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	yPatterns, err := compilePatterns("y", p.Y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	zPatterns, err := compilePatterns("z", p.Z)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	sol, err := solveWithTimeout(p.N, xPatterns, yPatterns, zPatterns, *timeout)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(os.Stderr, "error: solve timed out after %s\n", *timeout)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(2)
	}

	displayHexagon(os.Stdout, sol.Grid)
}

// solveWithTimeout runs solver.Solve on its own goroutine and races it
// against ctx's deadline. solver.Solve itself takes no context -- the CORE
// has no cancellation mechanism by design -- so a run past the deadline
// keeps working in the background after this function returns; the process
// exits regardless since main is about to call os.Exit.
func solveWithTimeout(n int, x, y, z []*regex.Pattern, timeout time.Duration) (*solver.Solution, error) {
	if timeout <= 0 {
		return solver.Solve(n, x, y, z)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	type result struct {
		sol *solver.Solution
		err error
	}
	done := make(chan result, 1)
	go func() {
		sol, err := solver.Solve(n, x, y, z)
		done <- result{sol, err}
	}()

	select {
	case r := <-done:
		return r.sol, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// displayHexagon renders a solved grid the way original_source/main.py's
// display_hexagon does: each row indented by max(n-1-y, y-n+1) spaces, with
// cells separated by a single space.
func displayHexagon(w io.Writer, grid hexgrid.Grid) {
	n := (len(grid) + 1) / 2
	for y, row := range grid.Strings() {
		padding := n - 1 - y
		if alt := y - n + 1; alt > padding {
			padding = alt
		}
		if padding < 0 {
			padding = 0
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", padding), strings.Join(splitLetters(row), " "))
	}
}

func splitLetters(row string) []string {
	out := make([]string, len(row))
	for i := 0; i < len(row); i++ {
		out[i] = row[i : i+1]
	}
	return out
}
