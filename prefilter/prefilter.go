// Package prefilter accelerates the common crossword idiom
// `(lit1|lit2|...)*`, a pattern that accepts exactly the strings that
// decompose into a concatenation of its literal alternatives, e.g.
// "(O|RHH|MM)*" from the classic regexp-crossword puzzle. It builds an
// Aho-Corasick automaton over the alternatives (the same construction
// coregx/coregex's meta package uses for its own "large literal
// alternation" engine strategy) as a reject pre-check, and answers
// full-string membership with a forward reachability scan over the stored
// literal alternatives, instead of invoking the general NFA simulator.
//
// An Index only ever has an opinion about wildcard-free text. It is a pure
// optimization: every pattern the compiler doesn't recognize as this shape,
// and every text that still contains a wildcard cell, is left to the
// general simulator, which remains the sole source of truth.
package prefilter

import "github.com/coregx/ahocorasick"

// Index answers "does text decompose into a concatenation of these
// literals". It uses an Aho-Corasick automaton as a linear-time reject
// filter (no alternative occurs anywhere in text => no nonempty
// decomposition exists) before falling back to an exact forward DP.
type Index struct {
	automaton    *ahocorasick.Automaton
	alternatives []string
}

// Build constructs an Index over the given literal alternatives. It
// returns an error only if the underlying automaton fails to build (e.g.
// an empty alternative list).
func Build(alternatives []string) (*Index, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range alternatives {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Index{automaton: auto, alternatives: alternatives}, nil
}

// FullyMatches reports whether text is exactly a concatenation of zero or
// more of the index's literal alternatives. Callers must only pass
// wildcard-free text; the automaton's hits are exact-literal, so a
// wildcard byte would make this answer meaningless. The solver only calls
// FullyMatches once a line has no remaining unknown cells.
func (idx *Index) FullyMatches(text []byte) bool {
	if len(text) == 0 {
		return true
	}
	if !idx.automaton.IsMatch(text) {
		return false
	}

	reachable := make([]bool, len(text)+1)
	reachable[0] = true
	for start := 0; start < len(text); start++ {
		if !reachable[start] {
			continue
		}
		for _, lit := range idx.alternatives {
			end := start + len(lit)
			if end <= len(text) && string(text[start:end]) == lit {
				reachable[end] = true
			}
		}
	}
	return reachable[len(text)]
}
