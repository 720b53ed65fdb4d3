package solver

import (
	"github.com/dneiter/hexcrossword/prefilter"
	"github.com/dneiter/hexcrossword/regex"
)

// lineMatcher pairs a pattern with an optional prefilter.Index built for
// it, so a crossing-line check can take the fast path when the line is
// already fully determined and fall back to the general simulator
// otherwise.
type lineMatcher struct {
	pattern *regex.Pattern
	index   *prefilter.Index
}

func newLineMatchers(patterns []*regex.Pattern) []lineMatcher {
	matchers := make([]lineMatcher, len(patterns))
	for i, p := range patterns {
		m := lineMatcher{pattern: p}
		if literals, ok := p.LiteralStarAlternatives(); ok {
			if idx, err := prefilter.Build(literals); err == nil {
				m.index = idx
			}
		}
		matchers[i] = m
	}
	return matchers
}

func hasWildcard(text []byte) bool {
	for _, c := range text {
		if c == regex.Wildcard {
			return true
		}
	}
	return false
}

// matches checks text against the pattern, using the prefilter's exact
// fast path whenever the line has no remaining unknown cells and the
// pattern has the shape prefilter can accelerate; otherwise it defers to
// the general NFA simulator, which is always correct.
func (m lineMatcher) matches(text []byte) bool {
	if m.index != nil && !hasWildcard(text) {
		return m.index.FullyMatches(text)
	}
	return m.pattern.Match(text)
}
