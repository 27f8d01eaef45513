// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package pages provides the four toybox pages: watch, counter,
// password, and the guessing game.
//
// Pages are thin views over the session. They translate key presses
// into state-machine events and render from a read-only session
// snapshot; none of them mutates the session directly.
package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmurphy-dev/toybox/internal/app"
)

// Page is one tab of the toybox UI.
type Page interface {
	// Title is the tab label.
	Title() string

	// Update consumes an input message for the active page and returns
	// the state-machine events to dispatch plus any component command
	// (cursor blink and the like).
	Update(msg tea.Msg) ([]app.Event, tea.Cmd)

	// Sync refreshes page widgets from the session after events were
	// applied, keeping the session the single source of truth.
	Sync(s *app.Session)

	// View renders the page from the session snapshot.
	View(s *app.Session, width int) string

	// Focus and Blur track whether this page is the active tab.
	Focus() tea.Cmd
	Blur()
}
