// SPDX-License-Identifier: MIT

package entropy

import (
	"math"
	"strconv"
)

// Entropy is an amount of information in bits.
// The zero value is zero bits and is the additive identity.
type Entropy struct {
	bits float64
}

// Entropic is implemented by anything that contributes randomness to a
// passphrase and can report how much.
type Entropic interface {
	Entropy() Entropy
}

// Zero returns zero bits.
func Zero() Entropy { return Entropy{} }

// One returns exactly one bit, the entropy of a fair binary decision.
func One() Entropy { return Entropy{bits: 1} }

// FromBits wraps a raw bit count.
func FromBits(bits float64) Entropy { return Entropy{bits: bits} }

// FromReal returns the entropy of a uniform choice among n outcomes, log2(n).
// Panics if n < 1 or n is NaN: a choice among fewer than one outcome is
// meaningless.
func FromReal(n float64) Entropy {
	if math.IsNaN(n) || n < 1 {
		panic("entropy: FromReal(n<1)")
	}

	return Entropy{bits: math.Log2(n)}
}

// Bits returns the raw bit count.
func (e Entropy) Bits() float64 { return e.bits }

// Add combines e with an independent source o.
func (e Entropy) Add(o Entropy) Entropy { return Entropy{bits: e.bits + o.bits} }

// Sub removes the contribution o from e.
func (e Entropy) Sub(o Entropy) Entropy { return Entropy{bits: e.bits - o.bits} }

// Scale returns the entropy of k independent repetitions of e.
// It is repeated addition, never a product of two entropies.
func (e Entropy) Scale(k float64) Entropy { return Entropy{bits: e.bits * k} }

// Div splits e into k equal shares.
func (e Entropy) Div(k float64) Entropy { return Entropy{bits: e.bits / k} }

// Less reports whether e carries fewer bits than o.
func (e Entropy) Less(o Entropy) bool { return e.bits < o.bits }

// IsZero reports whether e carries no information.
func (e Entropy) IsZero() bool { return e.bits == 0 }

// String renders e as "<bits> bits".
func (e Entropy) String() string {
	return strconv.FormatFloat(e.bits, 'f', -1, 64) + " bits"
}

// Sum adds all values, starting from Zero.
func Sum(values ...Entropy) Entropy {
	total := Zero()
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

// Total adds the contributions of every source in order.
// Nil sources contribute nothing.
func Total(sources ...Entropic) Entropy {
	total := Zero()
	for _, s := range sources {
		if s == nil {
			continue
		}
		total = total.Add(s.Entropy())
	}

	return total
}
