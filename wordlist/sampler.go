// SPDX-License-Identifier: MIT

package wordlist

import (
	"iter"
	"math/rand/v2"

	"github.com/katalvlaran/lvphrase/entropy"
	"github.com/katalvlaran/lvphrase/randsrc"
)

// uniform is the distribution over list indices [0, n).
type uniform struct {
	n int
}

// sample draws one index; rand.Rand.IntN is unbiased for every n.
// Complexity: O(1) expected.
func (u uniform) sample(r *rand.Rand) int { return r.IntN(u.n) }

// Sampler draws words uniformly at random from a List, indefinitely.
// It is a small value type: copies share the list storage.
// The zero Sampler is unusable; build one with NewSampler or List.Sampler.
type Sampler struct {
	list *List
	dist uniform
}

// NewSampler returns a Sampler over l.
// Panics if l is nil or holds no words; that can only be a programming
// error, since every List constructor rejects empty input.
// Complexity: O(1).
func NewSampler(l *List) Sampler {
	if l == nil || l.Len() == 0 {
		panic("wordlist: cannot construct sampler over an empty wordlist")
	}

	return Sampler{list: l, dist: uniform{n: l.Len()}}
}

// Clone returns a Sampler sharing the same list with a rebuilt distribution.
// Complexity: O(1); the words are never copied.
func (s Sampler) Clone() Sampler { return NewSampler(s.list) }

// List returns the backing list.
func (s Sampler) List() *List { return s.list }

// DrawIndex returns a uniform index into the list using r.
// Complexity: O(1) expected.
func (s Sampler) DrawIndex(r *rand.Rand) int { return s.dist.sample(r) }

// Draw returns a uniform word using r.
// Complexity: O(1) expected.
func (s Sampler) Draw(r *rand.Rand) string { return s.list.words[s.dist.sample(r)] }

// Word draws one word with a fresh secure generator.
// Complexity: O(1) plus one generator construction.
func (s Sampler) Word() string { return s.Draw(randsrc.Secure()) }

// All yields secure uniform draws forever; stop ranging to end it.
// Each range loop obtains its own generator when it starts.
// Complexity: O(1) expected per yielded word.
func (s Sampler) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		// One generator per loop: never shared across goroutines.
		r := randsrc.Secure()
		for {
			if !yield(s.Draw(r)) {
				return
			}
		}
	}
}

// Entropy is log2 of the list size: the information in one draw.
// Complexity: O(1).
func (s Sampler) Entropy() entropy.Entropy { return s.list.Entropy() }
