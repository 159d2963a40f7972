// SPDX-License-Identifier: MIT

package component

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvphrase/entropy"
)

// WordProvider yields single words, indefinitely.
// wordlist.Sampler satisfies it.
type WordProvider interface {
	entropy.Entropic
	Draw(r *rand.Rand) string
}

// WordSetProvider yields the ordered raw words of one passphrase.
type WordSetProvider interface {
	entropy.Entropic
	Words(r *rand.Rand) []string
}

// WordStyler transforms one word at a time.
type WordStyler interface {
	entropy.Entropic
	StyleWord(r *rand.Rand, word string) string
}

// PhraseBuilder combines the styled words into a single phrase.
type PhraseBuilder interface {
	entropy.Entropic
	BuildPhrase(r *rand.Rand, words []string) string
}

// PhraseStyler transforms the assembled phrase.
type PhraseStyler interface {
	entropy.Entropic
	StylePhrase(r *rand.Rand, phrase string) string
}

// Counter is implemented by providers that know their word count up front.
type Counter interface {
	WordCount() int
}

// Validator is implemented by stages whose zero value cannot run, such as
// a func adapter without a function. Builders reject a stage whose Valid
// reports false.
type Validator interface {
	Valid() bool
}

// Usable reports whether stage can run without panicking. It rejects nil
// interfaces, nil pointers to the built-in stage types, and any Validator
// that reports false. Pointers to caller-defined types are not inspected.
// Complexity: O(1).
func Usable(stage any) bool {
	switch s := stage.(type) {
	case nil:
		return false
	// Pointer cases first: their method sets include Valid, which would
	// dereference a nil receiver.
	case *FixedWordSet:
		return s != nil && s.Valid()
	case *Capitalizer:
		return s != nil
	case *SeparatorBuilder:
		return s != nil
	case *WordStylerFunc:
		return s != nil && s.Valid()
	case *PhraseStylerFunc:
		return s != nil && s.Valid()
	case Validator:
		return s.Valid()
	default:
		return true
	}
}
