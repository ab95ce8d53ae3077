// Package generator picks words at random.
package generator

import (
	"math/rand"
	"time"
)

// Generator selects words uniformly from a list.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSeeded returns a Generator with a fixed seed. A zero seed falls back to
// the current time.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		return New()
	}
	return NewWithSource(rand.NewSource(seed))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Pick returns one word chosen uniformly from words. words must not be empty.
func (g *Generator) Pick(words []string) string {
	return words[g.rnd.Intn(len(words))]
}
