// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/katalvlaran/lvphrase/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes run and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// phoneticFile writes a four word list and returns its path.
func phoneticFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phonetic.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha bravo\ncharlie\tdelta\n"), 0o600))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerate_Default(t *testing.T) {
	code, out, errOut := runCLI(t)
	require.Equal(t, 0, code, errOut)
	got := lines(out)
	require.Len(t, got, 1)
	assert.Len(t, strings.Split(got[0], " "), 5)
}

func TestGenerate_Flags(t *testing.T) {
	code, out, errOut := runCLI(t, "generate",
		"--wordlist", phoneticFile(t),
		"--words", "3", "--separator", "-",
		"--capitalize-first", "never",
		"--count", "4", "--entropy")
	require.Equal(t, 0, code, errOut)

	got := lines(out)
	require.Len(t, got, 5)
	pattern := regexp.MustCompile(`^(alpha|bravo|charlie|delta)(-(alpha|bravo|charlie|delta)){2}$`)
	for _, p := range got[:4] {
		assert.Regexp(t, pattern, p)
	}
	assert.Equal(t, "entropy: 6 bits", got[4])
}

func TestGenerate_SeedReproducible(t *testing.T) {
	args := []string{"-w", "4", "-n", "3", "--seed", "fixed"}
	code1, out1, _ := runCLI(t, args...)
	code2, out2, errOut := runCLI(t, args...)
	require.Equal(t, 0, code1)
	require.Equal(t, 0, code2)
	assert.Equal(t, out1, out2)
	assert.Contains(t, errOut, "deterministic seed")
}

func TestGenerate_Env(t *testing.T) {
	t.Setenv("LVPHRASE_WORDS", "2")
	t.Setenv("LVPHRASE_SEPARATOR", "+")
	code, out, errOut := runCLI(t)
	require.Equal(t, 0, code, errOut)
	assert.Len(t, strings.Split(lines(out)[0], "+"), 2)

	code, out, _ = runCLI(t, "--words", "3")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(lines(out)[0], "+"), 3, "flags override the environment")
}

func TestGenerate_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvphrase.env")
	require.NoError(t, os.WriteFile(path, []byte("LVPHRASE_SEPARATOR=.\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LVPHRASE_SEPARATOR") })

	code, out, errOut := runCLI(t, "--env-file", path, "generate", "-w", "3")
	require.Equal(t, 0, code, errOut)
	assert.Len(t, strings.Split(lines(out)[0], "."), 3)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"zero words", []string{"-w", "0"}, 1, "word count"},
		{"zero count", []string{"-n", "0"}, 1, "--count"},
		{"missing file", []string{"-l", "/nonexistent/list.txt"}, 1, "load"},
		{"unknown builtin", []string{"-b", "klingon"}, 1, "klingon"},
		{"conflict", []string{"-b", "english", "-l", "x.txt"}, 1, "mutually exclusive"},
		{"bad probability", []string{"--capitalize-first", "often"}, 1, "--capitalize-first"},
		{"unknown flag", []string{"--frobnicate"}, 2, "frobnicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.msg)
		})
	}
}

func TestEntropy_Breakdown(t *testing.T) {
	code, out, errOut := runCLI(t, "entropy")
	require.Equal(t, 0, code, errOut)

	got := lines(out)
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "word-set")
	assert.Contains(t, got[0], "55 bits")
	assert.Contains(t, got[1], "component.Capitalizer")
	assert.Equal(t, "total: 56 bits", got[3])
}

func TestWordlist_InfoAndExport(t *testing.T) {
	path := phoneticFile(t)

	code, out, errOut := runCLI(t, "wordlist", "info", "-l", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "words:         4")
	assert.Contains(t, out, "entropy/word:  2 bits")
	assert.Contains(t, out, wordlist.New([]string{"alpha", "bravo", "charlie", "delta"}).Fingerprint())

	code, out, errOut = runCLI(t, "wordlist", "export", "-l", path, "--as-diced")
	require.Equal(t, 0, code, errOut)
	parsed, err := wordlist.ParseDiced(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, parsed.Words())

	code, out, _ = runCLI(t, "wordlist", "export", "-l", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "alpha\nbravo\ncharlie\ndelta\n", out)
}

func TestWordlist_Names(t *testing.T) {
	code, out, _ := runCLI(t, "wordlist", "names")
	require.Equal(t, 0, code)
	got := lines(out)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "english")
	assert.Contains(t, got[0], "(default)")
}

func TestAudit(t *testing.T) {
	code, out, errOut := runCLI(t, "audit", "-l", phoneticFile(t), "--draws", "10000", "--seed", "audit")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "draws:       10000")
	assert.Contains(t, out, "uniform at alpha 0.001")

	code, _, errOut = runCLI(t, "audit", "-l", phoneticFile(t), "--draws", "3")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "too few draws")
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "lvphrase version "+version+"\n", out)

	code, out, _ = runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "audit")
}
