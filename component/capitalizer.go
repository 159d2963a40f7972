// SPDX-License-Identifier: MIT

package component

import (
	"math/rand/v2"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvphrase/entropy"
	"github.com/katalvlaran/lvphrase/probability"
)

// Capitalizer upper-cases the first letter and/or the whole word, each
// decided independently per word.
type Capitalizer struct {
	first probability.Probability
	all   probability.Probability
}

// NewCapitalizer returns a styler capitalizing the first letter with
// probability first and the whole word with probability all.
func NewCapitalizer(first, all probability.Probability) Capitalizer {
	return Capitalizer{first: first, all: all}
}

// First returns the first-letter probability.
func (c Capitalizer) First() probability.Probability { return c.first }

// All returns the whole-word probability.
func (c Capitalizer) All() probability.Probability { return c.all }

// StyleWord applies both decisions to word. Both are always drawn, first
// then all, so the randomness consumed per word does not depend on the
// outcome. The empty word is returned unchanged.
func (c Capitalizer) StyleWord(r *rand.Rand, word string) string {
	first := c.first.Decide(r)
	all := c.all.Decide(r)
	if word == "" {
		return word
	}
	if all {
		// A Caser is stateful; one per call keeps StyleWord goroutine safe.
		return cases.Upper(language.Und).String(word)
	}
	if first {
		return upperFirst(word)
	}

	return word
}

// Entropy is zero when the whole word is always capitalized, since the
// first-letter decision is then invisible. Otherwise it is the sum of both
// decisions.
func (c Capitalizer) Entropy() entropy.Entropy {
	if c.all.IsAlways() {
		return entropy.Zero()
	}

	return c.first.Entropy().Add(c.all.Entropy())
}

// upperFirst applies full upper-case mapping to the leading rune, so a
// single rune may expand ("ß" becomes "SS"). The rest is left as is.
func upperFirst(s string) string {
	_, size := utf8.DecodeRuneInString(s)

	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
