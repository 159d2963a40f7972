// SPDX-License-Identifier: MIT

package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads words separated by arbitrary whitespace.
// Read failures wrap ErrLoad; a source without words returns ErrEmpty.
func Parse(r io.Reader) (*List, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return fromParsed(words)
}

// ParseDiced reads one entry per line in the form "<prefix><whitespace><word>".
// Only the last whitespace-delimited token of each non-blank line is kept, so
// dice-roll prefixes are discarded and unprefixed lines pass through.
func ParseDiced(r io.Reader) (*List, error) {
	sc := bufio.NewScanner(r)

	var words []string
	for sc.Scan() {
		if w, ok := dicedWord(sc.Text()); ok {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return fromParsed(words)
}

// dicedWord extracts the trailing token of a diced line.
func dicedWord(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	return fields[len(fields)-1], true
}

// fromParsed turns scanner output into a List; tokens are already
// whitespace-free and non-empty.
func fromParsed(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmpty
	}

	return New(words), nil
}
