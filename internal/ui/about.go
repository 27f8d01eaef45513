// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package ui provides the root Bubble Tea model for the toybox TUI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RepositoryURL is the project home opened from the about overlay.
const RepositoryURL = "https://github.com/mmurphy-dev/toybox"

const aboutMarkdown = `# toybox

Version %s

Four small toys in one terminal app: an elapsed-time watch, a
plus/minus counter, a random password generator, and a number-guessing
game.

Repository: %s

Press **enter** to open the repository, **esc** to close.
`

// renderAbout renders the about overlay content. Rendering failures
// degrade to the raw markdown; the overlay must never block the UI.
func renderAbout(version string, width int) string {
	md := fmt.Sprintf(aboutMarkdown, version, RepositoryURL)

	if width <= 0 || width > 76 {
		width = 76
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
