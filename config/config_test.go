// SPDX-License-Identifier: MIT

package config_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/katalvlaran/lvphrase/component"
	"github.com/katalvlaran/lvphrase/config"
	"github.com/katalvlaran/lvphrase/probability"
	"github.com/katalvlaran/lvphrase/randsrc"
	"github.com/katalvlaran/lvphrase/scheme"
	"github.com/katalvlaran/lvphrase/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phonetic = wordlist.New([]string{"alpha", "bravo", "charlie", "delta"})

// TestDefault pins the documented defaults.
func TestDefault(t *testing.T) {
	b := config.Default()
	assert.Equal(t, 5, b.Words)
	assert.Equal(t, " ", b.Separator)
	assert.Equal(t, probability.Half(), b.CapitalizeFirst)
	assert.Equal(t, probability.Never, b.CapitalizeWords)
	require.NotNil(t, b.Provider)
	assert.Equal(t, 11.0, b.Provider.Entropy().Bits())
	assert.NoError(t, b.Validate())
}

// TestToScheme_Shape checks the canonical pipeline and its entropy.
func TestToScheme_Shape(t *testing.T) {
	s := config.Default().ToScheme()

	parts := s.Breakdown()
	require.Len(t, parts, 3)
	assert.Equal(t, "component.FixedWordSet", parts[0].Component)
	assert.Equal(t, "component.Capitalizer", parts[1].Component)
	assert.Equal(t, "component.SeparatorBuilder", parts[2].Component)
	assert.Equal(t, 56.0, s.Entropy().Bits())

	n, ok := s.WordCount()
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Len(t, strings.Split(s.Generate(), " "), 5)
}

// TestNew_Options applies every option.
func TestNew_Options(t *testing.T) {
	build := func() *scheme.Scheme {
		return scheme.From(config.New(
			config.WithWords(3),
			config.WithSeparator("-"),
			config.WithCapitalizeFirst(probability.Never),
			config.WithCapitalizeWords(probability.Never),
			config.WithWordList(phonetic),
			config.WithRand(randsrc.Seeded([]byte("options"))),
		))
	}
	a, b := build(), build()
	assert.Equal(t, 6.0, a.Entropy().Bits())

	batch := a.GenerateN(4)
	assert.Equal(t, batch, b.GenerateN(4), "same seed replays the same batch")
	for _, p := range batch {
		assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-[a-z]+$`), p)
	}
}

// TestNew_CustomProvider accepts any WordProvider.
func TestNew_CustomProvider(t *testing.T) {
	fixed := component.NewFixedWordSet(phonetic.Sampler(), 1).Provider()
	b := config.New(config.WithProvider(fixed), config.WithWords(2))
	assert.Equal(t, 4.0+1.0, b.ToScheme().Entropy().Bits())
}

// TestOptions_Panics rejects meaningless option input.
func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "config: WithWords(n<1)", func() { config.WithWords(0) })
	assert.PanicsWithValue(t, "config: WithWordList(nil)", func() { config.WithWordList(nil) })
	assert.PanicsWithValue(t, "config: WithProvider(nil)", func() { config.WithProvider(nil) })
	assert.PanicsWithValue(t, "config: WithRand(nil)", func() { config.WithRand(nil) })
}

// TestValidate covers the zero-word and nil-provider cases.
func TestValidate(t *testing.T) {
	b := config.Default()
	b.Words = 0
	assert.ErrorIs(t, b.Validate(), config.ErrNoWords)
	assert.Panics(t, func() { b.ToScheme() }, "zero words must fail fast")

	b = config.Default()
	b.Provider = nil
	assert.ErrorIs(t, b.Validate(), config.ErrNilProvider)
}
