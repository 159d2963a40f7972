// SPDX-License-Identifier: MIT

package component

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvphrase/entropy"
)

// FixedWordSet draws a fixed number of independent words per call.
type FixedWordSet struct {
	provider WordProvider
	n        int
}

// NewFixedWordSet returns a provider of n words drawn from p.
// Panics if p is nil or n < 1.
// Complexity: O(1).
func NewFixedWordSet(p WordProvider, n int) FixedWordSet {
	if p == nil {
		panic("component: NewFixedWordSet(nil provider)")
	}
	if n < 1 {
		panic("component: NewFixedWordSet(n<1)")
	}

	return FixedWordSet{provider: p, n: n}
}

// Words draws n words from the provider.
// Complexity: O(n) draws.
func (f FixedWordSet) Words(r *rand.Rand) []string {
	out := make([]string, f.n)
	for i := range out {
		out[i] = f.provider.Draw(r)
	}

	return out
}

// Valid reports whether f came from NewFixedWordSet; the zero value has
// no provider.
func (f FixedWordSet) Valid() bool { return f.provider != nil && f.n >= 1 }

// WordCount returns n.
func (f FixedWordSet) WordCount() int { return f.n }

// Provider returns the underlying word provider.
func (f FixedWordSet) Provider() WordProvider { return f.provider }

// Entropy is n independent draws: provider entropy scaled by n.
func (f FixedWordSet) Entropy() entropy.Entropy {
	return f.provider.Entropy().Scale(float64(f.n))
}
