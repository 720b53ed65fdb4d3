package prefilter

import "testing"

func TestFullyMatches(t *testing.T) {
	idx, err := Build([]string{"O", "RHH", "MM"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	accept := []string{"", "O", "OOOO", "MMORHHO", "ORHH"}
	reject := []string{"MMORHHH", "X", "OR", "RH"}

	for _, text := range accept {
		if !idx.FullyMatches([]byte(text)) {
			t.Errorf("FullyMatches(%q) = false, want true", text)
		}
	}
	for _, text := range reject {
		if idx.FullyMatches([]byte(text)) {
			t.Errorf("FullyMatches(%q) = true, want false", text)
		}
	}
}

func TestFullyMatchesAgreesWithRegex(t *testing.T) {
	idx, err := Build([]string{"DI", "NS", "TH", "OM"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tests := map[string]bool{
		"":           true,
		"DI":         true,
		"DINS":       true,
		"DINSTHOM":   true,
		"DINSTHOMX":  false,
		"D":          false,
		"THOMDINSNS": true,
	}
	for text, want := range tests {
		if got := idx.FullyMatches([]byte(text)); got != want {
			t.Errorf("FullyMatches(%q) = %v, want %v", text, got, want)
		}
	}
}
