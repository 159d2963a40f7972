// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvphrase/component"
	"github.com/katalvlaran/lvphrase/randsrc"
)

// Builder collects stages for a Scheme. The zero value is ready to use.
// A Builder is not safe for concurrent use.
type Builder struct {
	provider      component.WordSetProvider
	wordStylers   []component.WordStyler
	builder       component.PhraseBuilder
	phraseStylers []component.PhraseStyler
	rand          randsrc.Factory
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// WordSetProvider sets the mandatory word-set provider.
func (b *Builder) WordSetProvider(p component.WordSetProvider) *Builder {
	b.provider = p
	return b
}

// WordStylers replaces the word styler list.
func (b *Builder) WordStylers(s ...component.WordStyler) *Builder {
	b.wordStylers = slices.Clone(s)
	return b
}

// AddWordStyler appends one word styler.
func (b *Builder) AddWordStyler(s component.WordStyler) *Builder {
	b.wordStylers = append(b.wordStylers, s)
	return b
}

// PhraseBuilder sets the mandatory phrase builder.
func (b *Builder) PhraseBuilder(pb component.PhraseBuilder) *Builder {
	b.builder = pb
	return b
}

// PhraseStylers replaces the phrase styler list.
func (b *Builder) PhraseStylers(s ...component.PhraseStyler) *Builder {
	b.phraseStylers = slices.Clone(s)
	return b
}

// AddPhraseStyler appends one phrase styler.
func (b *Builder) AddPhraseStyler(s component.PhraseStyler) *Builder {
	b.phraseStylers = append(b.phraseStylers, s)
	return b
}

// Rand sets the generator factory; nil restores randsrc.Default.
func (b *Builder) Rand(f randsrc.Factory) *Builder {
	b.rand = f
	return b
}

// Build validates the collected stages and returns an immutable Scheme.
// The Builder may be reused afterwards without affecting the result.
//
// Errors:
//   - ErrMissingWordSetProvider if no usable provider is set (nil, a nil
//     pointer, or a zero FixedWordSet).
//   - ErrMissingPhraseBuilder if no usable phrase builder is set.
//   - ErrNilStage, wrapped with the list and position, for a styler that
//     is nil, a nil pointer, or a func adapter without a function.
//
// Every check happens here so that a built Scheme never fails while
// generating.
// Complexity: O(stylers).
func (b *Builder) Build() (*Scheme, error) {
	if !component.Usable(b.provider) {
		return nil, ErrMissingWordSetProvider
	}
	if !component.Usable(b.builder) {
		return nil, ErrMissingPhraseBuilder
	}
	for i, s := range b.wordStylers {
		if !component.Usable(s) {
			return nil, fmt.Errorf("%w: word styler %d", ErrNilStage, i)
		}
	}
	for i, s := range b.phraseStylers {
		if !component.Usable(s) {
			return nil, fmt.Errorf("%w: phrase styler %d", ErrNilStage, i)
		}
	}

	f := b.rand
	if f == nil {
		f = randsrc.Default()
	}

	return &Scheme{
		provider:      b.provider,
		wordStylers:   slices.Clone(b.wordStylers),
		builder:       b.builder,
		phraseStylers: slices.Clone(b.phraseStylers),
		rand:          f,
	}, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Scheme {
	s, err := b.Build()
	if err != nil {
		panic(err.Error())
	}

	return s
}
