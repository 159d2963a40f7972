// SPDX-License-Identifier: MIT

package wordlist

import "errors"

// Sentinel errors returned by the loaders. Callers branch with errors.Is;
// the underlying I/O error, when any, stays reachable through the chain.
var (
	// ErrLoad indicates the wordlist source could not be opened, read or decompressed.
	ErrLoad = errors.New("wordlist: failed to load wordlist")

	// ErrEmpty indicates a source that parsed successfully but held no words.
	ErrEmpty = errors.New("wordlist: loaded wordlist did not contain words")

	// ErrUnknownBuiltin indicates a built-in list name that is not embedded.
	ErrUnknownBuiltin = errors.New("wordlist: unknown built-in wordlist")
)
