// SPDX-License-Identifier: MIT

package wordlist_test

import (
	"testing"

	"github.com/katalvlaran/lvphrase/randsrc"
	"github.com/katalvlaran/lvphrase/wordlist"
)

// BenchmarkSampler_Draw measures a single uniform draw from the default list.
func BenchmarkSampler_Draw(b *testing.B) {
	s := wordlist.Default().Sampler()
	r := randsrc.Secure()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Draw(r)
	}
}

// BenchmarkNew measures validating and fingerprinting a 2048 word list.
func BenchmarkNew(b *testing.B) {
	words := wordlist.Default().Words()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wordlist.New(words)
	}
}
