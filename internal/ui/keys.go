// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package ui provides the root Bubble Tea model for the toybox TUI.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global keyboard bindings. Page-local keys live in
// the page implementations; only ctrl-modified keys are global so that
// the text inputs keep plain characters to themselves.
type KeyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	About    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default global key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous page"),
		),
		About: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "about"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("C-h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.About, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage},
		{k.About, k.Help, k.Quit},
	}
}
