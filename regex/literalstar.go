package regex

import "strings"

// detectLiteralStar recognizes the exact shape `(lit1|lit2|...|litK)*`
// where every litI is a run of plain letters (no metacharacters at all).
// This is the common crossword idiom (e.g. "(O|RHH|MM)*") that
// prefilter.Build can accelerate. It is a syntactic check on the source
// string, deliberately independent of the compiled graph, so it can never
// disagree with Compile about what is or isn't well-formed. A pattern this
// function accepts is always also accepted by the general compiler, and the
// literal set it returns is exactly the alternation's branches.
func detectLiteralStar(pattern string) ([]string, bool) {
	if len(pattern) < 4 {
		return nil, false
	}
	if pattern[0] != '(' || pattern[len(pattern)-1] != '*' || pattern[len(pattern)-2] != ')' {
		return nil, false
	}
	inner := pattern[1 : len(pattern)-2]
	if inner == "" {
		return nil, false
	}
	branches := strings.Split(inner, "|")
	literals := make([]string, 0, len(branches))
	for _, b := range branches {
		if b == "" || !isPlainLetters(b) {
			return nil, false
		}
		literals = append(literals, b)
	}
	return literals, true
}

func isPlainLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
