// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// terminal.go - TTY detection for toybox.
//
// The TUI refuses to start when stdout is not a terminal (piped output,
// CI); the non-TUI commands work anywhere.
package cli

import (
	"os"

	"golang.org/x/term"
)

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsOutputTTY returns true if stdout is a terminal.
func IsOutputTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
