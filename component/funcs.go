// SPDX-License-Identifier: MIT

package component

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvphrase/entropy"
)

// WordStylerFunc adapts a function into a WordStyler declaring Bits of entropy.
// Bits is the styler's contribution to one phrase, summed over all of its
// words; a scheme does not multiply it by the word count.
type WordStylerFunc struct {
	Fn   func(r *rand.Rand, word string) string
	Bits entropy.Entropy
}

// StyleWord calls Fn.
func (f WordStylerFunc) StyleWord(r *rand.Rand, word string) string { return f.Fn(r, word) }

// Entropy returns Bits.
func (f WordStylerFunc) Entropy() entropy.Entropy { return f.Bits }

// Valid reports whether Fn is set; the zero WordStylerFunc is not usable.
func (f WordStylerFunc) Valid() bool { return f.Fn != nil }

// PhraseStylerFunc adapts a function into a PhraseStyler declaring Bits of entropy.
type PhraseStylerFunc struct {
	Fn   func(r *rand.Rand, phrase string) string
	Bits entropy.Entropy
}

// StylePhrase calls Fn.
func (f PhraseStylerFunc) StylePhrase(r *rand.Rand, phrase string) string { return f.Fn(r, phrase) }

// Entropy returns Bits.
func (f PhraseStylerFunc) Entropy() entropy.Entropy { return f.Bits }

// Valid reports whether Fn is set; the zero PhraseStylerFunc is not usable.
func (f PhraseStylerFunc) Valid() bool { return f.Fn != nil }

// Deterministic wraps a pure word transform with zero entropy.
func Deterministic(fn func(word string) string) WordStylerFunc {
	if fn == nil {
		panic("component: Deterministic(nil)")
	}

	return WordStylerFunc{Fn: func(_ *rand.Rand, w string) string { return fn(w) }}
}

// Suffix returns a phrase styler appending a fixed suffix, zero entropy.
func Suffix(s string) PhraseStylerFunc {
	return PhraseStylerFunc{Fn: func(_ *rand.Rand, p string) string { return p + s }}
}
