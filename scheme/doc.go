// SPDX-License-Identifier: MIT

// Package scheme assembles pipeline stages into an immutable Scheme that
// generates passphrases and reports their entropy.
//
// A Scheme has two states. While a Builder collects stages the scheme is
// unbuilt; Build validates the mandatory slots and returns a *Scheme that
// cannot be reconfigured, so Entropy is stable for its lifetime.
//
// Generation, for each call:
//
//  1. draw the word set from the WordSetProvider;
//  2. fold every WordStyler over every word, in configured order;
//  3. build the phrase with the PhraseBuilder;
//  4. fold every PhraseStyler over the phrase, in configured order.
//
// Each call obtains its own *rand.Rand from the scheme's randsrc.Factory,
// which makes a Scheme safe for concurrent use as long as its stages are
// free of side effects.
//
// Entropy is the sum of every stage's contribution. The additive model
// assumes the stages are independent and overstates entropy when they are
// not; custom combinations must be audited by the caller.
//
// Errors (sentinel):
//
//	ErrMissingWordSetProvider - Build without a word-set provider
//	ErrMissingPhraseBuilder   - Build without a phrase builder
//	ErrNilStage               - a nil styler in either list (wrapped with its position)
package scheme
