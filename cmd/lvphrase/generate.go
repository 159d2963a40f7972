// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
)

// GenerateCmd prints passphrases.
type GenerateCmd struct {
	SchemeFlags `embed:""`

	Count       int  `short:"n" default:"1" help:"Number of passphrases"`
	ShowEntropy bool `name:"entropy" short:"e" help:"Print the entropy after the passphrases"`
}

func (c *GenerateCmd) Run(a *app) error {
	if c.Count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", c.Count)
	}
	b, err := c.basic(a.log)
	if err != nil {
		return err
	}

	s := b.ToScheme()
	for _, p := range s.GenerateN(c.Count) {
		fmt.Fprintln(a.out, p)
	}
	if c.ShowEntropy {
		fmt.Fprintf(a.out, "entropy: %s\n", s.Entropy())
	}
	a.log.Info("generated", "count", c.Count, "bits", s.Entropy().Bits())

	return nil
}

// EntropyCmd prints a stage-by-stage entropy breakdown.
type EntropyCmd struct {
	SchemeFlags `embed:""`
}

func (c *EntropyCmd) Run(a *app) error {
	b, err := c.basic(a.log)
	if err != nil {
		return err
	}

	s := b.ToScheme()
	for _, part := range s.Breakdown() {
		fmt.Fprintf(a.out, "%-15s %d  %-28s %s\n", part.Stage, part.Position, part.Component, part.Entropy)
	}
	fmt.Fprintf(a.out, "total: %s\n", s.Entropy())

	return nil
}
