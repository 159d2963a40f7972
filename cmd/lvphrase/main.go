// SPDX-License-Identifier: MIT

// Command lvphrase generates passphrases and inspects wordlists.
//
// Settings are layered: defaults, then LVPHRASE_* variables (optionally
// loaded from --env-file), then flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/lvphrase/config"
	"github.com/katalvlaran/lvphrase/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for lvphrase.
type CLI struct {
	// Global flags
	LogLevel  string   `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string   `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})"`
	EnvFile   []string `name:"env-file" type:"path" help:"Load .env files before reading LVPHRASE_* variables"`

	Generate GenerateCmd   `cmd:"" default:"withargs" help:"Generate passphrases (default command)"`
	Entropy  EntropyCmd    `cmd:"" help:"Show the entropy of a configuration, stage by stage"`
	Wordlist WordlistGroup `cmd:"" help:"Wordlist operations"`
	Audit    AuditCmd      `cmd:"" help:"Check a wordlist sampler for bias"`
	Version  VersionCmd    `cmd:"" help:"Print version information"`
}

// app carries the writers and logger into command Run methods.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	var cli CLI
	exit := -1
	parser, err := kong.New(&cli,
		kong.Name("lvphrase"),
		kong.Description("Diceware-style passphrases with measurable entropy"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(out, errOut),
		kong.Exit(func(code int) { exit = code }),
	)
	if err != nil {
		fmt.Fprintf(errOut, "lvphrase: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exit >= 0 {
		// --help and friends ask to exit early.
		return exit
	}
	if err != nil {
		fmt.Fprintf(errOut, "lvphrase: error: %v\n", err)
		fmt.Fprintln(errOut, "run 'lvphrase --help' for usage")
		return 2
	}

	level, _ := logging.ParseLevel(cli.LogLevel)
	format, _ := logging.ParseFormat(cli.LogFormat)
	a := &app{out: out, errOut: errOut, log: logging.New(errOut, level, format)}

	if err := cli.loadEnvFiles(a.log); err != nil {
		fmt.Fprintf(errOut, "lvphrase: error: %v\n", err)
		return 1
	}

	if err := kctx.Run(a); err != nil {
		var coded exitError
		if errors.As(err, &coded) {
			fmt.Fprintf(errOut, "lvphrase: %v\n", err)
			return coded.code
		}
		fmt.Fprintf(errOut, "lvphrase: error: %v\n", err)
		return 1
	}

	return 0
}

func (c *CLI) loadEnvFiles(log *slog.Logger) error {
	if len(c.EnvFile) == 0 {
		return nil
	}
	log.Debug("loading env files", "files", c.EnvFile)

	return config.LoadDotEnv(c.EnvFile...)
}

// exitError reports a non-error outcome that still needs a distinct exit
// status, such as a failed audit.
type exitError struct {
	msg  string
	code int
}

func (e exitError) Error() string { return e.msg }

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "lvphrase version %s\n", version)
	return nil
}
