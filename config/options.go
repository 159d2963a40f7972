// SPDX-License-Identifier: MIT
//
// options.go - functional options for Basic.
//
// Option constructors validate and panic on meaningless input; building a
// scheme from a valid Basic never fails.

package config

import (
	"github.com/katalvlaran/lvphrase/component"
	"github.com/katalvlaran/lvphrase/probability"
	"github.com/katalvlaran/lvphrase/randsrc"
	"github.com/katalvlaran/lvphrase/wordlist"
)

// Option mutates a Basic before use.
type Option func(*Basic)

// New returns Default with opts applied in order.
func New(opts ...Option) Basic {
	b := Default()
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// WithWords sets the word count. Panics if n < 1.
func WithWords(n int) Option {
	if n < 1 {
		panic("config: WithWords(n<1)")
	}
	return func(b *Basic) { b.Words = n }
}

// WithSeparator sets the separator; "" concatenates words.
func WithSeparator(sep string) Option {
	return func(b *Basic) { b.Separator = sep }
}

// WithCapitalizeFirst sets the first-letter probability.
func WithCapitalizeFirst(p probability.Probability) Option {
	return func(b *Basic) { b.CapitalizeFirst = p }
}

// WithCapitalizeWords sets the whole-word probability.
func WithCapitalizeWords(p probability.Probability) Option {
	return func(b *Basic) { b.CapitalizeWords = p }
}

// WithWordList samples uniformly from l. Panics on nil.
func WithWordList(l *wordlist.List) Option {
	if l == nil {
		panic("config: WithWordList(nil)")
	}
	s := l.Sampler()
	return func(b *Basic) { b.Provider = s }
}

// WithProvider sets an arbitrary word provider. Panics on nil.
func WithProvider(p component.WordProvider) Option {
	if p == nil {
		panic("config: WithProvider(nil)")
	}
	return func(b *Basic) { b.Provider = p }
}

// WithRand sets the generator factory. Panics on nil.
func WithRand(f randsrc.Factory) Option {
	if f == nil {
		panic("config: WithRand(nil)")
	}
	return func(b *Basic) { b.Rand = f }
}
