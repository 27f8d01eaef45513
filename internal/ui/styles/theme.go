// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package styles provides the visual styling system for the toybox TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Accent is the configurable highlight color.
	Accent lipgloss.Color

	// ==========================================================================
	// HEADER AND TAB BAR
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// ==========================================================================
	// PAGE CONTENT
	// ==========================================================================

	PageTitle lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Hint      lipgloss.Style
	Feedback  lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style

	// ==========================================================================
	// INPUT AND CHROME
	// ==========================================================================

	InputContainer lipgloss.Style
	HelpBar        lipgloss.Style
	Overlay        lipgloss.Style
}

// NewTheme creates a theme with all styles configured. accent is a hex
// color or ANSI index from the configuration.
func NewTheme(accent string) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Accent:       lipgloss.Color(accent),
	}

	t.initStyles()
	return t
}

// SetAccent re-derives the accent-dependent styles. Called when the
// configuration is hot-reloaded.
func (t *Theme) SetAccent(accent string) {
	t.Accent = lipgloss.Color(accent)
	t.initStyles()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	subtle := lipgloss.Color("241")
	text := lipgloss.Color("252")
	if !t.IsDark {
		subtle = lipgloss.Color("245")
		text = lipgloss.Color("236")
	}

	t.Header = lipgloss.NewStyle().
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Accent).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(subtle).
		Padding(0, 2)

	t.PageTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(text).
		MarginBottom(1)

	t.Label = lipgloss.NewStyle().
		Foreground(subtle)

	t.Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(text)

	t.Hint = lipgloss.NewStyle().
		Foreground(subtle).
		Italic(true)

	t.Feedback = lipgloss.NewStyle().
		Foreground(text)

	t.Good = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	t.Bad = lipgloss.NewStyle().
		Foreground(lipgloss.Color("203"))

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(subtle).
		Padding(0, 1)

	t.HelpBar = lipgloss.NewStyle().
		Foreground(subtle).
		Padding(0, 1)

	t.Overlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)
}
