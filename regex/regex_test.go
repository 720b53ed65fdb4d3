package regex

import "testing"

func mustCompile(t *testing.T, pattern string) *Pattern {
	t.Helper()
	p, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return p
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unbalanced group", "(AB"},
		{"unterminated class", "[AB"},
		{"dangling star", "*AB"},
		{"escape with no digits", "\\"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile(tt.pattern); err == nil {
				t.Errorf("Compile(%q) = nil error, want CompileError", tt.pattern)
			}
		})
	}
}

func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"AA", "A", false},
		{"AA", "AA", true},
		{"AA", "AAAA", false},
		{"(O|RHH|MM)*", "", true},
		{"(O|RHH|MM)*", "MMORHHO", true},
		{"(O|RHH|MM)*", "MMORHHH", false},
		{"(...?)\\1*", "ABABAB", true},
		{".*", "..Z.", true},
		{"[^C]*", "ABD", true},
		{"[^C]*", "ABC", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			p := mustCompile(t, tt.pattern)
			if got := p.Match([]byte(tt.text)); got != tt.want {
				t.Errorf("Compile(%q).Match(%q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

func TestBackreferenceSelfMatch(t *testing.T) {
	p := mustCompile(t, "(.)\\1")
	accept := []string{"AA", "BB", ".."}
	reject := []string{"AB", "A", "AAA"}
	for _, text := range accept {
		if !p.Match([]byte(text)) {
			t.Errorf("(.)\\1.Match(%q) = false, want true", text)
		}
	}
	for _, text := range reject {
		if p.Match([]byte(text)) {
			t.Errorf("(.)\\1.Match(%q) = true, want false", text)
		}
	}
}

func TestWildcardDominance(t *testing.T) {
	patterns := []string{"AA", "(O|RHH|MM)*", "[^C]*", "A+B*C?", "(AB|CD)+"}
	for _, pattern := range patterns {
		p := mustCompile(t, pattern)
		for length := 0; length <= 4; length++ {
			wildcards := make([]byte, length)
			for i := range wildcards {
				wildcards[i] = Wildcard
			}
			got := p.Match(wildcards)
			want := acceptsSomeLength(p, length)
			if got != want {
				t.Errorf("%q.Match(%d wildcards) = %v, want %v", pattern, length, got, want)
			}
		}
	}
}

// acceptsSomeLength brute-forces whether p accepts any concrete string of
// the given length, as the reference oracle for TestWildcardDominance.
func acceptsSomeLength(p *Pattern, length int) bool {
	var try func(prefix []byte) bool
	try = func(prefix []byte) bool {
		if len(prefix) == length {
			return p.Match(prefix)
		}
		for c := byte('A'); c <= 'Z'; c++ {
			if try(append(prefix, c)) {
				return true
			}
			prefix = prefix[:len(prefix)]
		}
		return false
	}
	return try(make([]byte, 0, length))
}

func TestQuantifierLaws(t *testing.T) {
	base := "(AB|C)"
	star := mustCompile(t, base+"*")
	plus := mustCompile(t, base+"+")
	opt := mustCompile(t, base+"?")
	inner := mustCompile(t, base)

	if !opt.Match([]byte("")) {
		t.Error("P? must accept empty string")
	}
	if !star.Match([]byte("")) {
		t.Error("P* must accept empty string")
	}
	if plus.Match([]byte("")) {
		t.Error("P+ must reject empty string when P does not accept empty")
	}

	words := []string{"AB", "C", "ABAB", "ABC", "CAB", "CC"}
	for _, w := range words {
		if inner.Match([]byte(w)) && !opt.Match([]byte(w)) {
			t.Errorf("P? must accept everything P accepts: %q", w)
		}
	}
	concatenations := []string{"AB", "C", "ABC", "CAB", "ABAB", "CCC"}
	for _, w := range concatenations {
		if !plus.Match([]byte(w)) {
			t.Errorf("P+ must accept nonempty concatenations of P: %q", w)
		}
		if !star.Match([]byte(w)) {
			t.Errorf("P* must accept everything P+ accepts: %q", w)
		}
	}
}

func TestLiteralStarDetection(t *testing.T) {
	p := mustCompile(t, "(O|RHH|MM)*")
	lits, ok := p.LiteralStarAlternatives()
	if !ok {
		t.Fatal("expected literal-star shape to be detected")
	}
	want := map[string]bool{"O": true, "RHH": true, "MM": true}
	if len(lits) != len(want) {
		t.Fatalf("literals = %v, want keys of %v", lits, want)
	}
	for _, l := range lits {
		if !want[l] {
			t.Errorf("unexpected literal %q", l)
		}
	}

	notStar := mustCompile(t, ".*")
	if _, ok := notStar.LiteralStarAlternatives(); ok {
		t.Error(".* must not be detected as a literal star")
	}
}
