// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for adfgvx.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdEncrypt
	CmdDecrypt
	CmdKey
	CmdStatus
	CmdConfig
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool

	// Command-specific
	InputDir   string
	OutputDir  string
	Key        string
	Subcommand string

	// MissingValue names a value flag that was given no value, e.g. "--key"
	// followed by another dash token. Handlers report it instead of silently
	// falling back to the configured value.
	MissingValue string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `adfgvx - ADFGVX cipher batch tool

Encrypts and decrypts directories of text files with the ADFGVX field
cipher: a fixed Polybius-square substitution followed by a key-driven
columnar transposition.

Usage:
  adfgvx                        Start TUI (default)
  adfgvx encrypt [flags]        Encrypt every file in the input directory
  adfgvx decrypt [flags]        Decrypt every file in the input directory
  adfgvx key check <KEY>        Validate a transposition key
  adfgvx status, s              Show current settings and terminal info
  adfgvx config [show|get|set]  Configuration
  adfgvx history [--limit N]    Show recent batch runs
  adfgvx version                Show version
  adfgvx help                   Show this help

Encrypt/Decrypt Flags:
  --in DIR     Input directory (default: configured input_dir)
  --out DIR    Output directory (default: configured output_dir)
  --key KEY    Transposition key (default: configured key)

  Values that begin with '-' need the --flag=VALUE form, e.g. --in=-dir.

Config Commands:
  adfgvx config show            Show full configuration
  adfgvx config get <key>       Get one value (e.g. ui.theme)
  adfgvx config set <key> <val> Set and save one value

Global Flags:
  -q, --quiet     Minimal output
  -v, --verbose   Debug output

Key Rules:
  5 to 16 characters, letters and digits only, no repeated characters.
  Note that encryption drops trailing characters that do not fill a
  whole transposition row.

Examples:
  adfgvx encrypt --in ./plain --out ./secret --key GERMAN
  adfgvx decrypt --in ./secret --out ./plain --key GERMAN
  adfgvx key check GERMAN
  adfgvx config set key GERMAN
  adfgvx history --limit 10

Environment:
  ADFGVX_INPUT_DIR, ADFGVX_OUTPUT_DIR, ADFGVX_KEY, ADFGVX_THEME,
  ADFGVX_HISTORY, NO_COLOR, FORCE_COLOR

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("adfgvx version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs is Parse over an explicit argument slice.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	// No arguments: open the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "encrypt", "enc", "e":
		parseBatchArgs(&parsedArgs, remaining)
		return CmdEncrypt, parsedArgs

	case "decrypt", "dec", "d":
		parseBatchArgs(&parsedArgs, remaining)
		return CmdDecrypt, parsedArgs

	case "key":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		if len(remaining) > 1 {
			parsedArgs.Key = remaining[1]
		}
		return CmdKey, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "config":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdConfig, parsedArgs

	case "history", "runs":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = remaining[0]
		}
		return CmdHistory, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command: show help rather than guessing.
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--verbose":
			parsedArgs.Verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs
}

// parseBatchArgs parses encrypt/decrypt flags.
func parseBatchArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.InputDir = parser.FlagOrDefault("in", parser.Flag("input"))
	args.OutputDir = parser.FlagOrDefault("out", parser.Flag("output"))
	args.Key = parser.FlagOrDefault("key", parser.Flag("k"))

	// A dash-prefixed value turns a value flag into a boolean; catch that
	// so the user is pointed at the --flag=VALUE form.
	for _, name := range []string{"in", "input", "out", "output", "key", "k"} {
		if parser.BoolFlag(name) {
			args.MissingValue = name
			return
		}
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// ERROR HANDLING: Errors must not be silently ignored

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}

// Fail prints a styled error to stderr and returns a nonzero exit code.
func Fail(err error) int {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
	return 1
}
