// SPDX-License-Identifier: MIT

// Package component defines the pipeline stages a Scheme is assembled from,
// and the canonical implementation of each.
//
// Stages, in the order a Scheme applies them:
//
//	WordSetProvider -> WordStyler* -> PhraseBuilder -> PhraseStyler*
//
// Every stage is an entropy.Entropic: it declares how many bits of
// randomness it contributes, and a Scheme's entropy is the plain sum of its
// stages. Stages receive the *rand.Rand of the current generation call and
// must not retain it; they hold no mutable state, so one value can serve
// any number of goroutines.
//
// Built-ins:
//
//	FixedWordSet    - n independent draws from a WordProvider
//	Capitalizer     - per word "capitalize first" and "capitalize all" decisions
//	SeparatorBuilder - joins words with a fixed separator
//	WordStylerFunc, PhraseStylerFunc - adapt plain functions
//
// Constructors panic on meaningless input (nil provider, zero words); those
// are programmer errors detected at configuration time. Styling and building
// never fail.
package component
