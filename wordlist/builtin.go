// SPDX-License-Identifier: MIT

package wordlist

import (
	"embed"
	"fmt"
	"slices"
	"sync"

	"github.com/ulikunitz/xz"
)

// Names of the embedded word lists.
const (
	// NameEnglish is the BIP-0039 English list: 2048 words, 11 bits per word.
	NameEnglish = "english"
	// NamePetname is the petname adjective, adverb and animal list: 1162 words.
	NamePetname = "petname"
	// NameLarge is the union of english and petname: 2971 words.
	NameLarge = "large"

	// DefaultName is the list used when none is configured.
	DefaultName = NameEnglish
)

//go:embed data/*.txt.xz
var builtinFS embed.FS

// builtins decodes each embedded list at most once; the resulting *List is
// shared by every caller.
var builtins = map[string]func() (*List, error){
	NameEnglish: sync.OnceValues(func() (*List, error) { return decodeBuiltin("data/english.txt.xz") }),
	NamePetname: sync.OnceValues(func() (*List, error) { return decodeBuiltin("data/petname.txt.xz") }),
	NameLarge:   sync.OnceValues(func() (*List, error) { return decodeBuiltin("data/large.txt.xz") }),
}

// Builtin returns the embedded list called name.
func Builtin(name string) (*List, error) {
	load, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
	}

	return load()
}

// MustBuiltin is like Builtin but panics on error.
func MustBuiltin(name string) *List {
	l, err := Builtin(name)
	if err != nil {
		panic(err.Error())
	}

	return l
}

// Default returns the default embedded list (english).
func Default() *List { return MustBuiltin(DefaultName) }

// BuiltinNames lists the embedded list names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// decodeBuiltin decompresses and parses one embedded file.
func decodeBuiltin(file string) (*List, error) {
	f, err := builtinFS.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, file, err)
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, file, err)
	}

	return Parse(xr)
}
