// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvphrase/wordlist"
)

// WordlistGroup contains wordlist operations.
type WordlistGroup struct {
	Info   WordlistInfoCmd   `cmd:"" help:"Describe a wordlist"`
	Export WordlistExportCmd `cmd:"" help:"Write a wordlist to stdout"`
	Names  WordlistNamesCmd  `cmd:"" help:"List built-in wordlists"`
}

// WordlistInfoCmd describes a wordlist.
type WordlistInfoCmd struct {
	ListFlags `embed:""`
}

func (c *WordlistInfoCmd) Run(a *app) error {
	l, err := c.list(a.log)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "words:         %d\n", l.Len())
	fmt.Fprintf(a.out, "entropy/word:  %s\n", l.Entropy())
	fmt.Fprintf(a.out, "dice/word:     %d\n", l.DicePerWord())
	fmt.Fprintf(a.out, "fingerprint:   %s\n", l.Fingerprint())

	return nil
}

// WordlistExportCmd writes a wordlist, plain or diced.
type WordlistExportCmd struct {
	ListFlags `embed:""`

	AsDiced bool `name:"as-diced" help:"Prefix each word with a dice roll"`
}

func (c *WordlistExportCmd) Run(a *app) error {
	l, err := c.list(a.log)
	if err != nil {
		return err
	}

	if c.AsDiced {
		return wordlist.WriteDiced(a.out, l)
	}

	return wordlist.WritePlain(a.out, l)
}

// WordlistNamesCmd lists the built-in wordlists.
type WordlistNamesCmd struct{}

func (c *WordlistNamesCmd) Run(a *app) error {
	for _, name := range wordlist.BuiltinNames() {
		l := wordlist.MustBuiltin(name)
		suffix := ""
		if name == wordlist.DefaultName {
			suffix = " (default)"
		}
		fmt.Fprintf(a.out, "%-8s %5d words%s\n", name, l.Len(), suffix)
	}

	return nil
}
