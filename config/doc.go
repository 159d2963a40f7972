// SPDX-License-Identifier: MIT

// Package config is the thin factory that turns a handful of named options
// into a ready Scheme.
//
// Basic describes the canonical pipeline:
//
//	FixedWordSet(Provider, Words) -> Capitalizer(CapitalizeFirst, CapitalizeWords)
//	  -> SeparatorBuilder(Separator), no phrase stylers
//
// Defaults: 5 words, a single space, capitalize-first Half, capitalize-words
// Never, uniform sampling of the built-in english list.
//
// Three ways to fill a Basic:
//
//   - New(opts...) with functional options; option constructors panic on
//     meaningless input (WithWords(0), nil list or provider);
//   - FromEnv, reading LVPHRASE_* variables with caarlos0/env; errors are
//     returned, never panicked, because the input is external;
//   - LoadDotEnv first, to populate the environment from .env files.
//
// Environment variables (prefix LVPHRASE_):
//
//	WORDS             word count (default 5)
//	SEPARATOR         separator (default " " when unset; set but empty concatenates)
//	CAPITALIZE_FIRST  probability text form (default "half")
//	CAPITALIZE_WORDS  probability text form (default "never")
//	WORDLIST          path to a wordlist file (.xz accepted)
//	WORDLIST_DICED    treat WORDLIST as diced (default false)
//	WORDLIST_BUILTIN  built-in list name, used when WORDLIST is empty
//
// Errors (sentinel):
//
//	ErrNoWords       - word count below one
//	ErrNilProvider   - no word provider
//	ErrWordListConflict - both WORDLIST and WORDLIST_BUILTIN are set
package config
