// SPDX-License-Identifier: MIT

package wordlist_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvphrase/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// phonetic is the four word list used across the package tests.
var phonetic = []string{"alpha", "bravo", "charlie", "delta"}

// TestNew_Invalid verifies that malformed input panics at construction time.
func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"nil", nil},
		{"empty slice", []string{}},
		{"empty word", []string{"alpha", ""}},
		{"embedded space", []string{"alpha bravo"}},
		{"embedded tab", []string{"alpha\tbravo"}},
		{"trailing newline", []string{"alpha\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { wordlist.New(tt.words) })
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the caller's slice is not observed.
func TestNew_CopiesInput(t *testing.T) {
	words := slices.Clone(phonetic)
	l := wordlist.New(words)
	words[0] = "mutated"

	assert.Equal(t, "alpha", l.At(0))
	got := l.Words()
	got[1] = "mutated"
	assert.Equal(t, "bravo", l.At(1), "Words must return a copy")
}

// TestList_Accessors covers Len, At, Contains, All and Entropy.
func TestList_Accessors(t *testing.T) {
	l := wordlist.New(phonetic)

	require.Equal(t, 4, l.Len())
	assert.Equal(t, "charlie", l.At(2))
	assert.True(t, l.Contains("delta"))
	assert.False(t, l.Contains("echo"))
	assert.Equal(t, phonetic, slices.Collect(l.All()))
	assert.Equal(t, 2.0, l.Entropy().Bits())

	// Early break from All.
	var first []string
	for w := range l.All() {
		first = append(first, w)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"alpha", "bravo"}, first)
}

// TestList_Fingerprint checks stability and order sensitivity.
func TestList_Fingerprint(t *testing.T) {
	a := wordlist.New(phonetic)
	b := wordlist.New(slices.Clone(phonetic))
	c := wordlist.New([]string{"bravo", "alpha", "charlie", "delta"})

	assert.Len(t, a.Fingerprint(), 64, "hex BLAKE3-256 digest")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

// TestList_DicePerWord checks the dice count at powers of six.
func TestList_DicePerWord(t *testing.T) {
	tests := []struct {
		n    int
		dice int
	}{
		{1, 1}, {6, 1}, {7, 2}, {36, 2}, {37, 3}, {2048, 5}, {7776, 5}, {7777, 6},
	}
	for _, tt := range tests {
		words := make([]string, tt.n)
		for i := range words {
			words[i] = "w" + string(rune('a'+i%26))
		}
		assert.Equal(t, tt.dice, wordlist.New(words).DicePerWord(), "n=%d", tt.n)
	}
}
