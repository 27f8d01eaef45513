// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// cli.go - argument parsing and command routing for toybox.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdStats
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool

	// Command-specific
	Subcommand string
	Limit      int // stats: number of games to list

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `toybox - a four-page terminal playground

Four small toys in one terminal app: an elapsed-time watch, a
plus/minus counter, a random password generator, and a number-guessing
game.

Usage:
  toybox                 Start the TUI (default)
  toybox stats           Show guessing-game history
    --limit N            List at most N games (default: 20)
  toybox config [show|path]
                         Show configuration or its file path
  toybox version         Show version information
  toybox help            Show this help

Keys (inside the TUI):
  tab / shift+tab        Next / previous page
  ctrl+a                 About
  ctrl+h                 Toggle key help
  ctrl+c                 Quit

Configuration: ~/.toybox/config.toml (hot-reloaded on change)
Environment:   TOYBOX_ACCENT_COLOR, TOYBOX_START_PAGE, TOYBOX_SHOW_HELP,
               TOYBOX_STATS, TOYBOX_LOG_LEVEL

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("toybox version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

// parse is Parse on an explicit argument slice, for tests.
func parse(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "stats", "history":
		parseStatsArgs(&args, remaining)
		return CmdStats, args

	case "config":
		if len(remaining) > 0 {
			args.Subcommand = remaining[0]
		}
		return CmdConfig, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	args := Args{Limit: 20}
	var remaining []string

	for _, a := range argv {
		switch a {
		case "--quiet", "-q":
			args.Quiet = true
		case "--verbose":
			args.Verbose = true
		default:
			remaining = append(remaining, a)
		}
	}
	return remaining, args
}

func parseStatsArgs(args *Args, remaining []string) {
	for i := 0; i < len(remaining); i++ {
		if remaining[i] == "--limit" && i+1 < len(remaining) {
			if n, err := strconv.Atoi(remaining[i+1]); err == nil && n > 0 {
				args.Limit = n
			}
			i++
		}
	}
}
