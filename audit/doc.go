// SPDX-License-Identifier: MIT

// Package audit checks, empirically, that a word Sampler is unbiased.
//
// Uniformity draws N indices from a Sampler, tallies how often each word
// came up and runs Pearson's chi-square goodness-of-fit test against the
// uniform expectation N/k:
//
//	X² = Σ (observed_i - N/k)² / (N/k),   df = k - 1
//
// The p-value is the upper tail of the chi-square distribution with df
// degrees of freedom. A p-value below the chosen alpha rejects uniformity.
// Descriptive statistics of the observed relative frequencies (mean,
// standard deviation, min, max) accompany the test for human inspection.
//
// Errors (sentinel):
//
//	ErrSingleWord  - a one word list has no degrees of freedom to test
//	ErrTooFewDraws - fewer than MinExpected draws per word on average
package audit
