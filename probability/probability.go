// SPDX-License-Identifier: MIT

package probability

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvphrase/entropy"
)

// Sentinel errors for probability construction and parsing.
var (
	// ErrOutOfRange indicates a probability outside [0,1] (or a percentage
	// outside [0,100]), or NaN.
	ErrOutOfRange = errors.New("probability: value out of range")

	// ErrSyntax indicates text that is neither a keyword, a number nor a percentage.
	ErrSyntax = errors.New("probability: invalid syntax")
)

// Kind classifies a Probability.
type Kind int

const (
	// KindNever never applies the effect.
	KindNever Kind = iota
	// KindSometimes applies the effect with probability p, 0 < p < 1.
	KindSometimes
	// KindAlways always applies the effect.
	KindAlways
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindAlways:
		return "always"
	case KindSometimes:
		return "sometimes"
	default:
		return "never"
	}
}

// Probability is an immutable likelihood in [0,1].
// The zero value is Never.
type Probability struct {
	p float64
}

var (
	// Always applies an effect every time.
	Always = Probability{p: 1}
	// Never applies an effect.
	Never = Probability{}
)

// New validates p and returns the normalized Probability.
func New(p float64) (Probability, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Never, fmt.Errorf("%w: %v not in [0,1]", ErrOutOfRange, p)
	}

	return Probability{p: p}, nil
}

// Must is like New but panics on invalid input. Use it for values fixed at
// configuration time.
func Must(p float64) Probability {
	prob, err := New(p)
	if err != nil {
		panic(err.Error())
	}

	return prob
}

// Sometimes is Must spelled after the variant it usually produces;
// Sometimes(0) is Never and Sometimes(1) is Always.
func Sometimes(p float64) Probability { return Must(p) }

// FromPercentage converts a percentage in [0,100].
func FromPercentage(pct float64) (Probability, error) {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return Never, fmt.Errorf("%w: %v%% not in [0,100]", ErrOutOfRange, pct)
	}

	return Probability{p: pct / 100}, nil
}

// Half returns Sometimes(0.5).
func Half() Probability { return Probability{p: 0.5} }

// FromBool maps true to Always and false to Never.
func FromBool(b bool) Probability {
	if b {
		return Always
	}

	return Never
}

// Kind reports which variant p is.
func (p Probability) Kind() Kind {
	switch {
	case p.p >= 1:
		return KindAlways
	case p.p <= 0:
		return KindNever
	default:
		return KindSometimes
	}
}

// IsAlways reports whether p is Always.
func (p Probability) IsAlways() bool { return p.Kind() == KindAlways }

// IsNever reports whether p is Never.
func (p Probability) IsNever() bool { return p.Kind() == KindNever }

// IsSometimes reports whether p is a proper Sometimes value.
func (p Probability) IsSometimes() bool { return p.Kind() == KindSometimes }

// Value returns p as a float in [0,1].
func (p Probability) Value() float64 { return p.p }

// Percentage returns p in [0,100].
func (p Probability) Percentage() float64 { return p.p * 100 }

// Decide draws one decision. Always and Never do not consume randomness,
// so r may be nil for them.
func (p Probability) Decide(r *rand.Rand) bool {
	switch p.Kind() {
	case KindAlways:
		return true
	case KindNever:
		return false
	default:
		return r.Float64() < p.p
	}
}

// Entropy is one bit for Sometimes and zero otherwise.
func (p Probability) Entropy() entropy.Entropy {
	if p.IsSometimes() {
		return entropy.One()
	}

	return entropy.Zero()
}

// String renders "always", "never" or the percentage, e.g. "50%".
func (p Probability) String() string {
	if p.IsSometimes() {
		return strconv.FormatFloat(p.Percentage(), 'f', -1, 64) + "%"
	}

	return p.Kind().String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (p Probability) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; see Parse.
func (p *Probability) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// Parse reads the text form described in the package documentation.
func Parse(s string) (Probability, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "always", "true":
		return Always, nil
	case "never", "false":
		return Never, nil
	case "sometimes", "half":
		return Half(), nil
	case "":
		return Never, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Never, fmt.Errorf("%w: %q", ErrSyntax, s)
		}

		return FromPercentage(v)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Never, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	return New(v)
}
