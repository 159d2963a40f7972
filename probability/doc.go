// SPDX-License-Identifier: MIT

// Package probability provides the tri-state likelihood used by styling
// stages to decide whether to apply an effect.
//
// A Probability is Always, Never or Sometimes(p) with 0 < p < 1. Boundary
// values normalize: 0 becomes Never and 1 becomes Always, so a Sometimes
// value is never stored at either end of the interval. Values outside [0,1]
// are rejected by New and FromPercentage, and make Must panic.
//
// Entropy: a Sometimes decision contributes exactly one bit whatever its
// skew; Always and Never contribute nothing. This is a deliberate
// simplification of the binary entropy function.
//
// Text form, used by environment and flag parsing:
//
//	always | true            -> Always
//	never  | false           -> Never
//	sometimes | half         -> Sometimes(0.5)
//	0.25                     -> Sometimes(0.25)
//	25%                      -> Sometimes(0.25)
package probability
