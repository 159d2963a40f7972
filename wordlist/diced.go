// SPDX-License-Identifier: MIT

package wordlist

import (
	"bufio"
	"io"
)

// WritePlain writes one word per line. Parse reads the output back.
func WritePlain(w io.Writer, l *List) error {
	bw := bufio.NewWriter(w)
	for _, word := range l.words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteDiced writes l in the diced format: every line carries a fixed-width
// dice-roll prefix (digits 1-6, DicePerWord dice), a tab and the word.
// ParseDiced reads the output back into an identical List.
//
// With four words and one die the output is:
//
//	1	alpha
//	2	bravo
//	3	charlie
//	4	delta
func WriteDiced(w io.Writer, l *List) error {
	dice := l.DicePerWord()
	prefix := make([]byte, dice)

	bw := bufio.NewWriter(w)
	for i, word := range l.words {
		rollPrefix(prefix, i)
		if _, err := bw.Write(prefix); err != nil {
			return err
		}
		if _, err := bw.WriteString("\t" + word + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// rollPrefix renders index i as base-6 dice faces '1'..'6' into dst,
// most significant die first.
func rollPrefix(dst []byte, i int) {
	for pos := len(dst) - 1; pos >= 0; pos-- {
		dst[pos] = byte('1' + i%6)
		i /= 6
	}
}
