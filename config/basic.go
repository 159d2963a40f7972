// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvphrase/component"
	"github.com/katalvlaran/lvphrase/probability"
	"github.com/katalvlaran/lvphrase/randsrc"
	"github.com/katalvlaran/lvphrase/scheme"
	"github.com/katalvlaran/lvphrase/wordlist"
)

// Default values.
const (
	DefaultWords     = 5
	DefaultSeparator = " "
)

var (
	// ErrNoWords indicates a word count below one.
	ErrNoWords = errors.New("config: word count must be at least 1")

	// ErrNilProvider indicates a Basic without a word provider.
	ErrNilProvider = errors.New("config: nil word provider")
)

// Basic is the configuration of the canonical scheme.
type Basic struct {
	Words           int
	Separator       string
	CapitalizeFirst probability.Probability
	CapitalizeWords probability.Probability
	Provider        component.WordProvider

	// Rand overrides the generator factory; nil means randsrc.Default.
	Rand randsrc.Factory
}

// Default returns the default configuration.
func Default() Basic {
	return Basic{
		Words:           DefaultWords,
		Separator:       DefaultSeparator,
		CapitalizeFirst: probability.Half(),
		CapitalizeWords: probability.Never,
		Provider:        wordlist.Default().Sampler(),
	}
}

// Validate reports the first invalid field.
func (b Basic) Validate() error {
	if b.Words < 1 {
		return fmt.Errorf("%w: got %d", ErrNoWords, b.Words)
	}
	if b.Provider == nil {
		return ErrNilProvider
	}

	return nil
}

// ToScheme builds the canonical scheme. It panics if b is invalid; call
// Validate first when b comes from external input.
func (b Basic) ToScheme() *scheme.Scheme {
	if err := b.Validate(); err != nil {
		panic(err.Error())
	}

	return scheme.NewBuilder().
		WordSetProvider(component.NewFixedWordSet(b.Provider, b.Words)).
		AddWordStyler(component.NewCapitalizer(b.CapitalizeFirst, b.CapitalizeWords)).
		PhraseBuilder(component.NewSeparatorBuilder(b.Separator)).
		Rand(b.Rand).
		MustBuild()
}

var _ scheme.Config = Basic{}
