// SPDX-License-Identifier: MIT

package wordlist

import (
	"encoding/hex"
	"iter"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/zeebo/blake3"

	"github.com/katalvlaran/lvphrase/entropy"
)

// List is an immutable, ordered collection of words.
// Always handle it through a *List; the zero List holds no words and
// cannot back a Sampler.
type List struct {
	words       []string
	fingerprint string
}

// New builds a List from a copy of words.
// Panics if words is empty, or if any word is empty or contains whitespace.
func New(words []string) *List {
	if len(words) == 0 {
		panic("wordlist: cannot construct wordlist, given list of words is empty")
	}
	for i, w := range words {
		if w == "" {
			panic("wordlist: word " + strconv.Itoa(i) + " is empty")
		}
		if strings.IndexFunc(w, unicode.IsSpace) >= 0 {
			panic("wordlist: word " + strconv.Itoa(i) + " contains whitespace")
		}
	}

	owned := slices.Clone(words)
	sum := blake3.Sum256([]byte(strings.Join(owned, "\n")))

	return &List{
		words:       owned,
		fingerprint: hex.EncodeToString(sum[:]),
	}
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word.
func (l *List) At(i int) string { return l.words[i] }

// Words returns a copy of the words in order.
func (l *List) Words() []string { return slices.Clone(l.words) }

// All iterates over the words in order.
func (l *List) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range l.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Contains reports whether w is in the list.
func (l *List) Contains(w string) bool { return slices.Contains(l.words, w) }

// Entropy is the information content of one uniform draw, log2(Len).
func (l *List) Entropy() entropy.Entropy {
	return entropy.FromReal(float64(len(l.words)))
}

// Fingerprint is the hex BLAKE3-256 digest of the newline-joined words.
// Two lists with equal fingerprints hold the same words in the same order.
func (l *List) Fingerprint() string { return l.fingerprint }

// DicePerWord is the number of six-sided dice needed to address every word.
func (l *List) DicePerWord() int { return diceFor(len(l.words)) }

// Sampler returns a uniform Sampler over l.
func (l *List) Sampler() Sampler { return NewSampler(l) }

// diceFor returns the smallest k >= 1 with 6^k >= n.
func diceFor(n int) int {
	k, span := 1, 6
	for span < n {
		k++
		span *= 6
	}

	return k
}
