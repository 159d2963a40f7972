// SPDX-License-Identifier: MIT

// Package randsrc hands out random generators for passphrase generation.
//
// The pipeline never shares one mutable generator between goroutines. Each
// generation call asks a Factory for its own *rand.Rand (math/rand/v2) and
// threads it through every stage of that call:
//
//	r := randsrc.Secure()       // ChaCha8 keyed from crypto/rand
//	idx := r.IntN(len(words))   // unbiased uniform index
//
// Secure is the default and the only factory suitable for real secrets.
// NewShake and Seeded derive generators from a SHAKE256 stream so tests and
// demos can replay an exact sequence; never use them for real passphrases.
//
// A failing crypto/rand is treated as a catastrophic fault and panics.
package randsrc
