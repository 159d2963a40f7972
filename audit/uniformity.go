// SPDX-License-Identifier: MIT

package audit

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvphrase/wordlist"
)

// MinExpected is the smallest expected count per word for which the
// chi-square approximation is trusted.
const MinExpected = 5

// DefaultAlpha is the significance level used by the CLI.
const DefaultAlpha = 0.001

var (
	// ErrSingleWord indicates a sampler over one word; there is nothing to test.
	ErrSingleWord = errors.New("audit: uniformity needs at least two words")

	// ErrTooFewDraws indicates draws < MinExpected * words.
	ErrTooFewDraws = errors.New("audit: too few draws for a chi-square test")
)

// Report is the outcome of a uniformity audit.
type Report struct {
	Words     int     // list size k
	Draws     int     // number of draws N
	Counts    []int   // observed count per list index
	Expected  float64 // expected relative frequency 1/k
	ChiSquare float64 // Pearson statistic X²
	DF        int     // degrees of freedom k-1
	PValue    float64 // upper tail probability of X²

	MeanFrequency   float64 // mean observed relative frequency
	StdDevFrequency float64 // population standard deviation of relative frequencies
	MinFrequency    float64 // rarest word's relative frequency
	MaxFrequency    float64 // most common word's relative frequency
}

// Uniform reports whether the test fails to reject uniformity at alpha.
// Complexity: O(1).
func (r Report) Uniform(alpha float64) bool { return r.PValue >= alpha }

// MaxDeviation is the largest absolute gap between an observed relative
// frequency and the expected 1/k.
// Complexity: O(1).
func (r Report) MaxDeviation() float64 {
	return math.Max(math.Abs(r.MaxFrequency-r.Expected), math.Abs(r.MinFrequency-r.Expected))
}

// Uniformity draws `draws` indices from s using rng and tests them against
// the uniform distribution.
//
// Description:
//
//	Counts are tallied per list index, Pearson's X² is computed against
//	the expected count draws/k, and the p-value is the upper tail of the
//	chi-square distribution with k-1 degrees of freedom. Relative
//	frequencies are summarized with mean, population standard deviation,
//	min and max.
//
// Errors:
//   - ErrSingleWord  if the list has fewer than two words.
//   - ErrTooFewDraws if draws < MinExpected·k (the approximation is
//     unreliable below that).
//
// Complexity: O(draws + k) time, O(k) space.
func Uniformity(s wordlist.Sampler, draws int, rng *rand.Rand) (Report, error) {
	k := s.List().Len()
	if k < 2 {
		// df = k-1 = 0: there is no distribution to compare against.
		return Report{}, ErrSingleWord
	}
	if draws < MinExpected*k {
		return Report{}, fmt.Errorf("%w: %d draws over %d words, need at least %d",
			ErrTooFewDraws, draws, k, MinExpected*k)
	}

	// Tally by index, not by word: duplicate words stay distinguishable.
	counts := make([]int, k)
	for i := 0; i < draws; i++ {
		counts[s.DrawIndex(rng)]++
	}

	expectedCount := float64(draws) / float64(k)
	freqs := make([]float64, k)
	chi := 0.0
	for i, c := range counts {
		d := float64(c) - expectedCount
		chi += d * d / expectedCount
		freqs[i] = float64(c) / float64(draws)
	}

	// Upper tail; a large X² means observed counts stray from uniform.
	df := k - 1
	report := Report{
		Words:     k,
		Draws:     draws,
		Counts:    counts,
		Expected:  1 / float64(k),
		ChiSquare: chi,
		DF:        df,
		PValue:    1 - distuv.ChiSquared{K: float64(df)}.CDF(chi),
	}

	// stats fails only on empty input, which k >= 2 rules out.
	var err error
	if report.MeanFrequency, err = stats.Mean(freqs); err != nil {
		return Report{}, fmt.Errorf("audit: mean frequency: %w", err)
	}
	if report.StdDevFrequency, err = stats.StandardDeviation(freqs); err != nil {
		return Report{}, fmt.Errorf("audit: frequency deviation: %w", err)
	}
	if report.MinFrequency, err = stats.Min(freqs); err != nil {
		return Report{}, fmt.Errorf("audit: min frequency: %w", err)
	}
	if report.MaxFrequency, err = stats.Max(freqs); err != nil {
		return Report{}, fmt.Errorf("audit: max frequency: %w", err)
	}

	return report, nil
}
