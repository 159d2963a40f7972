// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvphrase/config"
	"github.com/katalvlaran/lvphrase/probability"
	"github.com/katalvlaran/lvphrase/randsrc"
	"github.com/katalvlaran/lvphrase/wordlist"
)

// ListFlags select a wordlist. Unset flags fall back to LVPHRASE_* variables.
type ListFlags struct {
	WordList string `name:"wordlist" short:"l" type:"path" help:"Wordlist file, whitespace separated (.xz accepted)"`
	Diced    bool   `help:"Wordlist file is diced: keep the last token of each line"`
	Builtin  string `short:"b" help:"Built-in list (english, petname, large)"`
}

// apply overrides the list selection of e.
func (f ListFlags) apply(e *config.Env) error {
	switch {
	case f.WordList != "" && f.Builtin != "":
		return config.ErrWordListConflict
	case f.WordList != "":
		e.WordList, e.WordListBuiltin = f.WordList, ""
	case f.Builtin != "":
		e.WordList, e.WordListBuiltin = "", f.Builtin
	}
	if f.Diced {
		e.WordListDiced = true
	}

	return nil
}

// list resolves the selected wordlist.
func (f ListFlags) list(log *slog.Logger) (*wordlist.List, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	if err := f.apply(&e); err != nil {
		return nil, err
	}
	l, err := e.List()
	if err != nil {
		return nil, err
	}
	log.Debug("wordlist resolved", "source", source(e), "words", l.Len(), "fingerprint", l.Fingerprint())

	return l, nil
}

// source names where a wordlist came from, for humans.
func source(e config.Env) string {
	switch {
	case e.WordList != "":
		return e.WordList
	case e.WordListBuiltin != "":
		return "builtin:" + e.WordListBuiltin
	default:
		return "builtin:" + wordlist.DefaultName
	}
}

// SchemeFlags configure the canonical scheme. Unset flags fall back to
// LVPHRASE_* variables and then to defaults.
type SchemeFlags struct {
	ListFlags `embed:""`

	Words           *int    `short:"w" help:"Words per passphrase (default 5)"`
	Separator       *string `short:"s" help:"Separator between words (default a space)"`
	CapitalizeFirst string  `name:"capitalize-first" help:"Probability of capitalizing the first letter: always, never, half, 0.25, 25%"`
	CapitalizeWords string  `name:"capitalize-words" help:"Probability of capitalizing whole words, same forms"`
	Seed            string  `help:"Deterministic seed; never use for real secrets"`
}

// basic layers env and flags into a validated config.Basic.
func (f SchemeFlags) basic(log *slog.Logger) (config.Basic, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return config.Basic{}, err
	}
	if err := f.apply(&e); err != nil {
		return config.Basic{}, err
	}
	if f.Words != nil {
		e.Words = *f.Words
	}
	if f.Separator != nil {
		e.Separator = *f.Separator
	}
	if f.CapitalizeFirst != "" {
		if e.CapitalizeFirst, err = probability.Parse(f.CapitalizeFirst); err != nil {
			return config.Basic{}, fmt.Errorf("--capitalize-first: %w", err)
		}
	}
	if f.CapitalizeWords != "" {
		if e.CapitalizeWords, err = probability.Parse(f.CapitalizeWords); err != nil {
			return config.Basic{}, fmt.Errorf("--capitalize-words: %w", err)
		}
	}

	b, err := e.Basic()
	if err != nil {
		return config.Basic{}, err
	}
	if f.Seed != "" {
		log.Warn("deterministic seed in use; output is reproducible and not secret")
		b.Rand = randsrc.Seeded([]byte(f.Seed))
	}
	log.Debug("scheme configured",
		"source", source(e),
		"words", b.Words,
		"separator", b.Separator,
		"capitalize_first", b.CapitalizeFirst.String(),
		"capitalize_words", b.CapitalizeWords.String(),
	)

	return b, nil
}
