// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/lvphrase/probability"
	"github.com/katalvlaran/lvphrase/wordlist"
)

// EnvPrefix prefixes every variable read by ParseEnv.
const EnvPrefix = "LVPHRASE_"

// ErrWordListConflict indicates both a wordlist path and a built-in name.
var ErrWordListConflict = errors.New("config: wordlist path and builtin name are mutually exclusive")

// Env mirrors Basic in environment form.
type Env struct {
	Words           int                     `env:"WORDS"            envDefault:"5"`
	Separator       string                  `env:"SEPARATOR"`
	CapitalizeFirst probability.Probability `env:"CAPITALIZE_FIRST" envDefault:"half"`
	CapitalizeWords probability.Probability `env:"CAPITALIZE_WORDS" envDefault:"never"`
	WordList        string                  `env:"WORDLIST"`
	WordListDiced   bool                    `env:"WORDLIST_DICED"`
	WordListBuiltin string                  `env:"WORDLIST_BUILTIN"`
}

// separatorVar is read by presence, not value: set but empty means
// "concatenate", which envDefault cannot express.
const separatorVar = EnvPrefix + "SEPARATOR"

// ParseEnv reads the LVPHRASE_* variables.
// An absent LVPHRASE_SEPARATOR means DefaultSeparator; an empty one means
// words are concatenated.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	if sep, ok := os.LookupEnv(separatorVar); ok {
		e.Separator = sep
	} else {
		e.Separator = DefaultSeparator
	}

	return e, nil
}

// List resolves the configured wordlist: a file, a built-in, or the default.
// File errors keep wordlist.ErrLoad and wordlist.ErrEmpty reachable.
func (e Env) List() (*wordlist.List, error) {
	switch {
	case e.WordList != "" && e.WordListBuiltin != "":
		return nil, ErrWordListConflict
	case e.WordList != "" && e.WordListDiced:
		return wordlist.LoadDiced(e.WordList)
	case e.WordList != "":
		return wordlist.Load(e.WordList)
	case e.WordListBuiltin != "":
		return wordlist.Builtin(e.WordListBuiltin)
	default:
		return wordlist.Default(), nil
	}
}

// Basic converts e into a validated Basic.
func (e Env) Basic() (Basic, error) {
	l, err := e.List()
	if err != nil {
		return Basic{}, err
	}
	b := Basic{
		Words:           e.Words,
		Separator:       e.Separator,
		CapitalizeFirst: e.CapitalizeFirst,
		CapitalizeWords: e.CapitalizeWords,
		Provider:        l.Sampler(),
	}
	if err := b.Validate(); err != nil {
		return Basic{}, err
	}

	return b, nil
}

// FromEnv is ParseEnv followed by Env.Basic.
func FromEnv() (Basic, error) {
	e, err := ParseEnv()
	if err != nil {
		return Basic{}, err
	}

	return e.Basic()
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no paths it reads ".env".
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("config: load dotenv: %w", err)
	}

	return nil
}
