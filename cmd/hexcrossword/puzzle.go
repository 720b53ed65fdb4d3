package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dneiter/hexcrossword/regex"
)

// puzzle is the on-disk/stdin JSON shape: a side length plus the three
// pattern-string families, each expected to have 2*N-1 entries. Compilation
// is deferred to compilePatterns so a malformed individual pattern reports
// which axis and line it came from.
type puzzle struct {
	N int      `json:"n"`
	X []string `json:"x"`
	Y []string `json:"y"`
	Z []string `json:"z"`
}

func loadPuzzle(r io.Reader) (*puzzle, error) {
	var p puzzle
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode puzzle: %w", err)
	}
	if p.N <= 0 {
		return nil, fmt.Errorf("decode puzzle: n must be positive, got %d", p.N)
	}
	return &p, nil
}

// compilePatterns compiles one axis's pattern strings, wrapping the first
// failure with the axis label and line index so the CLI can report exactly
// which pattern was malformed.
func compilePatterns(axis string, patterns []string) ([]*regex.Pattern, error) {
	out := make([]*regex.Pattern, len(patterns))
	for i, src := range patterns {
		p, err := regex.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%s[%d] %q: %w", axis, i, src, err)
		}
		out[i] = p
	}
	return out, nil
}
