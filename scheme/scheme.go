// SPDX-License-Identifier: MIT

package scheme

import (
	"iter"
	"math/rand/v2"

	"github.com/katalvlaran/lvphrase/component"
	"github.com/katalvlaran/lvphrase/entropy"
	"github.com/katalvlaran/lvphrase/randsrc"
)

// Scheme is an immutable passphrase pipeline. Build one with a Builder.
//
// Every field is set once by Build and never written again; the stage
// slices are private copies. Concurrent calls only read them.
type Scheme struct {
	provider      component.WordSetProvider
	wordStylers   []component.WordStyler
	builder       component.PhraseBuilder
	phraseStylers []component.PhraseStyler
	rand          randsrc.Factory
}

// Config is anything that can produce a Scheme.
type Config interface {
	ToScheme() *Scheme
}

// From builds the scheme described by cfg.
// Complexity: that of cfg.ToScheme.
func From(cfg Config) *Scheme { return cfg.ToScheme() }

// Generate returns one passphrase using a fresh generator from the
// scheme's factory. Safe for concurrent use.
// Complexity: O(W·(S_w+1) + S_p) stage calls for W words, S_w word
// stylers and S_p phrase stylers, plus one generator construction.
func (s *Scheme) Generate() string { return s.GenerateWith(s.rand()) }

// GenerateWith returns one passphrase drawing all randomness from r.
//
// Description:
//
//	Words come from the provider, every word styler is folded over every
//	word (styler-major order), the builder joins them, and every phrase
//	styler is folded over the result. The order is exactly the order the
//	stages were configured in.
//
// r must not be shared with other goroutines during the call.
// Complexity: O(W·(S_w+1) + S_p) stage calls.
func (s *Scheme) GenerateWith(r *rand.Rand) string {
	// The provider returns a fresh slice; styling in place is safe.
	words := s.provider.Words(r)
	for _, st := range s.wordStylers {
		for i, w := range words {
			words[i] = st.StyleWord(r, w)
		}
	}

	phrase := s.builder.BuildPhrase(r, words)
	for _, st := range s.phraseStylers {
		phrase = st.StylePhrase(r, phrase)
	}

	return phrase
}

// GenerateN returns n passphrases; n <= 0 yields nil.
// One generator serves the whole batch, so a seeded factory replays the
// batch as a unit.
// Complexity: n × GenerateWith.
func (s *Scheme) GenerateN(n int) []string {
	if n <= 0 {
		return nil
	}
	r := s.rand()
	out := make([]string, n)
	for i := range out {
		out[i] = s.GenerateWith(r)
	}

	return out
}

// All yields passphrases forever; stop ranging to end it.
// Each range loop obtains its own generator when it starts, so two loops
// over the same sequence never share state.
// Complexity: O(1) per yielded phrase beyond GenerateWith.
func (s *Scheme) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		r := s.rand()
		for {
			if !yield(s.GenerateWith(r)) {
				return
			}
		}
	}
}

// Entropy is the sum of all stage contributions, in bits.
//
// The sum assumes the stages are independent. It overstates the entropy
// when they are not, and that is left for the caller to audit.
// Complexity: O(S_w + S_p).
func (s *Scheme) Entropy() entropy.Entropy {
	total := s.provider.Entropy()
	for _, st := range s.wordStylers {
		total = total.Add(st.Entropy())
	}
	total = total.Add(s.builder.Entropy())
	for _, st := range s.phraseStylers {
		total = total.Add(st.Entropy())
	}

	return total
}

// WordCount reports the provider's fixed word count, if it has one.
// Complexity: O(1).
func (s *Scheme) WordCount() (int, bool) {
	c, ok := s.provider.(component.Counter)
	if !ok {
		// Custom providers may vary their size per call.
		return 0, false
	}

	return c.WordCount(), true
}

// Provider returns the word-set provider.
func (s *Scheme) Provider() component.WordSetProvider { return s.provider }

// PhraseBuilder returns the phrase builder.
func (s *Scheme) PhraseBuilder() component.PhraseBuilder { return s.builder }
