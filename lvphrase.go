// SPDX-License-Identifier: MIT

package lvphrase

import (
	"sync"

	"github.com/katalvlaran/lvphrase/config"
	"github.com/katalvlaran/lvphrase/scheme"
	"github.com/katalvlaran/lvphrase/wordlist"
)

// defaultScheme is built on first use and shared.
var defaultScheme = sync.OnceValue(func() *scheme.Scheme { return config.Default().ToScheme() })

// Passphrase returns one passphrase using every default.
func Passphrase() string { return defaultScheme().Generate() }

// PassphraseWords returns one default-styled passphrase of n words.
// Panics if n < 1.
func PassphraseWords(n int) string {
	if n < 1 {
		panic("lvphrase: PassphraseWords(n<1)")
	}

	return config.New(config.WithWords(n)).ToScheme().Generate()
}

// NewScheme builds the canonical scheme from options.
func NewScheme(opts ...config.Option) *scheme.Scheme {
	return config.New(opts...).ToScheme()
}

// Sampler returns a uniform sampler over the default list.
func Sampler() wordlist.Sampler { return wordlist.Default().Sampler() }
