// SPDX-License-Identifier: MIT

package component

import (
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/lvphrase/entropy"
)

// SeparatorBuilder joins words with a fixed separator.
type SeparatorBuilder struct {
	sep string
}

// NewSeparatorBuilder returns a builder joining with sep. An empty
// separator concatenates.
func NewSeparatorBuilder(sep string) SeparatorBuilder {
	return SeparatorBuilder{sep: sep}
}

// Separator returns the configured separator.
func (b SeparatorBuilder) Separator() string { return b.sep }

// BuildPhrase joins words; a single word yields no separator.
func (b SeparatorBuilder) BuildPhrase(_ *rand.Rand, words []string) string {
	return strings.Join(words, b.sep)
}

// Entropy is zero: joining is deterministic.
func (SeparatorBuilder) Entropy() entropy.Entropy { return entropy.Zero() }
