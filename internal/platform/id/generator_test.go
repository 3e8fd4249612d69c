package id

import (
	"strings"
	"testing"
)

func TestRandomGeneratorNewID(t *testing.T) {
	g := NewRandomGenerator()
	first, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if len(first) != 2*defaultSize {
		t.Fatalf("unexpected id length %d", len(first))
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"":                      false,
		"abc-123_X.y":           true,
		"has space":             false,
		"line\nbreak":           false,
		strings.Repeat("a", 64): true,
		strings.Repeat("a", 65): false,
	}
	for input, want := range cases {
		if got := Valid(input); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", input, got, want)
		}
	}
}
