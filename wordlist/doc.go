// SPDX-License-Identifier: MIT

// Package wordlist holds the immutable word lists passphrases are drawn
// from, and the uniform Sampler that draws them.
//
// A List is created once (from a slice, a reader, a file or a built-in) and
// then shared read-only by any number of samplers and goroutines. A Sampler
// is a small value: copying it shares the list and only duplicates the
// uniform distribution over [0, Len).
//
// Sources:
//
//	New(words)          - programmer-supplied slice; panics if invalid
//	Parse / ParseDiced  - io.Reader, plain or dice-prefixed format
//	Load / LoadDiced    - files, transparently xz-decompressed for *.xz
//	Builtin(name)       - embedded lists: english (default), petname, large
//
// File formats:
//
//	plain:  words separated by arbitrary whitespace
//	diced:  one "<prefix><whitespace><word>" per line; only the last token is kept
//
// Errors (sentinel):
//
//	ErrLoad           - the source could not be read
//	ErrEmpty          - the source contained no usable words
//	ErrUnknownBuiltin - no embedded list has the requested name
//
// Constructing a List or Sampler from an empty or malformed slice is a
// programming error and panics instead.
package wordlist
