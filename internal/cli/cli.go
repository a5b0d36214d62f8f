// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - argument parsing and command routing for regguru.
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
	CmdAsk
	CmdChat
	CmdHistory
	CmdUpload
	CmdFeedback
	CmdDocuments
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	Server  string // override server base URL
	JSON    bool

	// Command-specific
	Query      string
	File       string
	Subcommand string
	Rating     string
	Comments   string
	Range      string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `regguru - terminal client for the Reg-Guru document Q&A service

Ask questions about regulatory and policy documents you have uploaded
to a Reg-Guru server.

Usage:
  regguru                      Start the TUI (default)
  regguru ask "question"       Ask a single question
  regguru chat                 Interactive chat in the terminal
  regguru upload <file>        Upload a document
  regguru history              Browse saved queries
  regguru documents            List uploaded documents
  regguru feedback up|down     Rate the last saved answer
  regguru status               Check server connectivity
  regguru config [show|path]   Show configuration
  regguru version              Show version

History Options:
  regguru history --tui            Interactive browser
  regguru history --query TEXT     Filter by text
  regguru history --doc NAME       Filter by document
  regguru history --range all|today|week

Feedback Options:
  regguru feedback down --comments "Answer cited the wrong section"

Global Flags:
  --server URL    Override the server base URL
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --json          Machine-readable output where supported

Examples:
  regguru upload ./Company_Policy_2025.pdf
  regguru ask "What are the key requirements in section 3.2?"
  regguru history --query compliance --range week

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("regguru version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs is Parse over an explicit argument list, for tests.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask", "a":
		parsed.Query = strings.Join(positional(remaining), " ")
		return CmdAsk, parsed

	case "chat", "c":
		return CmdChat, parsed

	case "history", "queries":
		parseHistoryArgs(&parsed, remaining)
		return CmdHistory, parsed

	case "upload", "up":
		if pos := positional(remaining); len(pos) > 0 {
			parsed.File = pos[0]
		}
		return CmdUpload, parsed

	case "documents", "docs", "ls":
		return CmdDocuments, parsed

	case "feedback", "rate":
		parseFeedbackArgs(&parsed, remaining)
		return CmdFeedback, parsed

	case "status", "s":
		return CmdStatus, parsed

	case "config":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
		}
		return CmdConfig, parsed

	// -v is taken by --verbose, so it is not a version alias.
	case "version", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Unknown word: treat the whole line as an ask query, the way
		// people naturally type questions.
		parsed.Query = strings.Join(append([]string{cmd}, positional(remaining)...), " ")
		return CmdAsk, parsed
	}
}

// parseGlobalFlags strips the global flags and returns what is left.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-q", "--quiet":
			args.Quiet = true
		case "-v", "--verbose":
			args.Verbose = true
		case "--json":
			args.JSON = true
		case "--server":
			if i+1 < len(argv) {
				i++
				args.Server = argv[i]
			}
		default:
			remaining = append(remaining, argv[i])
		}
	}
	return remaining, args
}

// positional filters out flag-looking tokens.
func positional(argv []string) []string {
	var out []string
	for _, a := range argv {
		if !strings.HasPrefix(a, "-") {
			out = append(out, a)
		}
	}
	return out
}

func parseHistoryArgs(args *Args, argv []string) {
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--tui":
			args.Subcommand = "tui"
		case "--query", "-q":
			if i+1 < len(argv) {
				i++
				args.Query = argv[i]
			}
		case "--doc", "--document":
			if i+1 < len(argv) {
				i++
				args.File = argv[i]
			}
		case "--range":
			if i+1 < len(argv) {
				i++
				switch strings.ToLower(argv[i]) {
				case "today", "week", "all":
					args.Range = strings.ToLower(argv[i])
				}
			}
		}
	}
}

func parseFeedbackArgs(args *Args, argv []string) {
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "up", "thumbs_up", "+1":
			args.Rating = "thumbs_up"
		case "down", "thumbs_down", "-1":
			args.Rating = "thumbs_down"
		case "--comments", "-c":
			if i+1 < len(argv) {
				i++
				args.Comments = argv[i]
			}
		}
	}
}
