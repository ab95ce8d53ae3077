package generator

import (
	"math/rand"
	"testing"
)

func TestPickIsDeterministicForSeed(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	a := NewWithSource(rand.NewSource(42))
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		if wa, wb := a.Pick(words), b.Pick(words); wa != wb {
			t.Fatalf("pick %d diverged: %q vs %q", i, wa, wb)
		}
	}
}

func TestPickCoversAllWords(t *testing.T) {
	words := []string{"one", "two", "three"}
	g := NewWithSource(rand.NewSource(1))
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		seen[g.Pick(words)]++
	}
	for _, w := range words {
		if seen[w] == 0 {
			t.Fatalf("word %q never picked: %v", w, seen)
		}
	}
}

func TestPickSingleWord(t *testing.T) {
	if got := New().Pick([]string{"only"}); got != "only" {
		t.Fatalf("expected only, got %q", got)
	}
}
