// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/lvphrase/entropy"
)

// Stage identifies a pipeline slot.
type Stage int

const (
	StageWordSet Stage = iota
	StageWordStyler
	StagePhraseBuilder
	StagePhraseStyler
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageWordSet:
		return "word-set"
	case StageWordStyler:
		return "word-styler"
	case StagePhraseBuilder:
		return "phrase-builder"
	case StagePhraseStyler:
		return "phrase-styler"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Contribution is one stage's share of a scheme's entropy.
type Contribution struct {
	Stage     Stage
	Position  int    // index within the styler list; 0 for single slots
	Component string // dynamic type of the stage, e.g. "component.Capitalizer"
	Entropy   entropy.Entropy
}

// Breakdown lists every stage's contribution in pipeline order.
// The contributions sum to Entropy().
func (s *Scheme) Breakdown() []Contribution {
	out := make([]Contribution, 0, 2+len(s.wordStylers)+len(s.phraseStylers))
	out = append(out, contribution(StageWordSet, 0, s.provider))
	for i, st := range s.wordStylers {
		out = append(out, contribution(StageWordStyler, i, st))
	}
	out = append(out, contribution(StagePhraseBuilder, 0, s.builder))
	for i, st := range s.phraseStylers {
		out = append(out, contribution(StagePhraseStyler, i, st))
	}

	return out
}

func contribution(stage Stage, pos int, c entropy.Entropic) Contribution {
	return Contribution{
		Stage:     stage,
		Position:  pos,
		Component: fmt.Sprintf("%T", c),
		Entropy:   c.Entropy(),
	}
}
