// SPDX-License-Identifier: MIT

// Package entropy models the information content of a passphrase pipeline.
//
// An Entropy value is measured in bits: log2 of the number of equally likely
// outcomes a random choice can produce. Values are immutable and combine by
// addition only. Two independent choices with 2^a and 2^b outcomes yield
// 2^(a+b) joint outcomes, so their entropies add:
//
//	words := entropy.FromReal(7776)         // one diceware draw ≈ 12.925 bits
//	phrase := words.Scale(5)                // five independent draws ≈ 64.6 bits
//	total := entropy.Sum(phrase, entropy.One()) // plus one coin flip
//
// Every pipeline stage exposes its contribution through the Entropic
// interface, and Total folds any number of them together.
//
// Errors: none. FromReal panics for choice counts below one, which can only
// come from a misconfigured caller.
package entropy
