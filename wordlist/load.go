// SPDX-License-Identifier: MIT

package wordlist

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// xzSuffix marks files that are decompressed before parsing.
const xzSuffix = ".xz"

// Load reads a plain wordlist file (words separated by whitespace).
// Files ending in ".xz" are decompressed first.
//
// Errors:
//   - ErrLoad  if the file cannot be opened, read or decompressed; the
//     underlying error (e.g. fs.ErrNotExist) is kept in the chain.
//   - ErrEmpty if the file holds no words.
func Load(path string) (*List, error) {
	return loadWith(path, Parse)
}

// LoadDiced reads a diced wordlist file; see ParseDiced for the format.
// Errors match Load.
func LoadDiced(path string) (*List, error) {
	return loadWith(path, ParseDiced)
}

// loadWith opens path, unwraps xz when needed and hands the stream to parse.
func loadWith(path string, parse func(io.Reader) (*List, error)) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, xzSuffix) {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
		}
		r = xr
	}

	l, err := parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return l, nil
}
