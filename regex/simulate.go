package regex

import (
	"strconv"
	"strings"
)

// simState is the worklist triple (node, text position, capture tuple) the
// simulator explores. It enqueues each one at most once per Match call,
// which guarantees termination over the pattern graph's cycles (epsilon
// loops from '*'/'+').
type simState struct {
	n    *node
	pos  int
	caps captures
}

func (s simState) key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.n.id))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(s.pos))
	for _, slot := range s.caps {
		b.WriteByte(':')
		b.WriteByte(byte('0' + slot.state))
		b.WriteByte('=')
		b.WriteString(slot.text)
	}
	return b.String()
}

// Match reports whether text, letters and/or wildcards, is fully accepted
// by the pattern: some path from start to accept consumes exactly len(text)
// input symbols. Match is pure: it has no observable side effects and never
// mutates the pattern graph.
func (p *Pattern) Match(text []byte) bool {
	seen := make(map[string]struct{})
	queue := []simState{{n: p.start, pos: 0, caps: newCaptures(p.groupCount)}}
	seen[queue[0].key()] = struct{}{}

	push := func(s simState) {
		k := s.key()
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		caps := s.caps
		for _, g := range s.n.groupBegins {
			caps = caps.begin(g)
		}
		for _, g := range s.n.groupEnds {
			caps = caps.end(g)
		}

		if s.n == p.accept && s.pos == len(text) {
			return true
		}

		for _, target := range s.n.eps {
			push(simState{n: target, pos: s.pos, caps: caps})
		}

		if s.pos < len(text) {
			c := text[s.pos]

			for lit, targets := range s.n.literalEdges {
				if !literalEnabled(lit, c) {
					continue
				}
				grown := caps.appendToOpen(string(c))
				for _, t := range targets {
					push(simState{n: t, pos: s.pos + 1, caps: grown})
				}
			}

			if len(s.n.dotEdges) > 0 {
				grown := caps.appendToOpen(string(c))
				for _, t := range s.n.dotEdges {
					push(simState{n: t, pos: s.pos + 1, caps: grown})
				}
			}
		}

		for _, br := range s.n.backrefs {
			if br.group <= 0 || br.group > len(caps) {
				continue
			}
			slot := caps[br.group-1]
			if slot.state != groupClosed {
				continue
			}
			n := len(slot.text)
			if s.pos+n > len(text) {
				continue
			}
			if !backrefEnabled(slot.text, text[s.pos:s.pos+n]) {
				continue
			}
			grown := caps.appendToOpen(string(text[s.pos : s.pos+n]))
			push(simState{n: br.target, pos: s.pos + n, caps: grown})
		}
	}

	return false
}

// literalEnabled implements the labelled-letter transition rule: enabled
// iff the text symbol equals the pattern letter, or the text symbol is the
// wildcard. A pattern-side wildcard is a dot edge, handled separately.
func literalEnabled(patternLetter, textSymbol byte) bool {
	return textSymbol == patternLetter || textSymbol == Wildcard
}

// backrefEnabled compares a closed group's captured text against the text
// at the candidate offset, symbol by symbol, treating a wildcard on either
// side as "matches".
func backrefEnabled(captured string, candidate []byte) bool {
	for i := 0; i < len(captured); i++ {
		a, b := captured[i], candidate[i]
		if a != b && a != Wildcard && b != Wildcard {
			return false
		}
	}
	return true
}
