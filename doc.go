// SPDX-License-Identifier: MIT

// Package lvphrase generates diceware-style passphrases with measurable
// entropy.
//
// A passphrase is produced by a Scheme: an immutable pipeline that draws a
// fixed number of words uniformly from a wordlist, styles each word,
// joins them into a phrase and styles the phrase. Every stage declares how
// many bits of randomness it adds, so a Scheme can report the entropy of
// the passphrases it generates.
//
// Quick start:
//
//	p := lvphrase.Passphrase()                 // 5 words, defaults
//	s := lvphrase.NewScheme(config.WithWords(7), config.WithSeparator("-"))
//	fmt.Println(s.Generate(), s.Entropy())
//
// Packages:
//
//	entropy/     - Entropy value (bits), additive only
//	probability/ - Always / Never / Sometimes(p) decisions
//	randsrc/     - per-call secure generators, seeded SHAKE256 streams
//	wordlist/    - immutable lists, uniform Sampler, parsers, built-in lists
//	component/   - pipeline stage interfaces and built-in stages
//	scheme/      - Builder and immutable Scheme
//	config/      - canonical scheme factory, options, environment
//	audit/       - chi-square uniformity audit of a sampler
//	cmd/lvphrase - command line front end
//
// Errors fall in two classes. Configuration mistakes made by the program
// (zero words, empty list, probability outside [0,1]) panic at construction
// time. Failures caused by external input (unreadable or empty wordlist
// files, bad environment values) are returned as errors. Generating from a
// built Scheme never fails.
package lvphrase
