// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package pages provides the four toybox pages.
package pages

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmurphy-dev/toybox/internal/app"
	"github.com/mmurphy-dev/toybox/internal/ui/styles"
)

// Watch is the elapsed-time page. The displayed value comes straight
// from the session; the tick producer is owned by the root model.
type Watch struct {
	theme *styles.Theme
}

// NewWatch creates the watch page.
func NewWatch(theme *styles.Theme) *Watch {
	return &Watch{theme: theme}
}

func (w *Watch) Title() string { return "Watch" }

func (w *Watch) Update(msg tea.Msg) ([]app.Event, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "enter", " ", "s":
		return []app.Event{app.ToggleWatch{}}, nil
	}
	return nil, nil
}

func (w *Watch) Sync(*app.Session) {}

func (w *Watch) View(s *app.Session, width int) string {
	var b strings.Builder

	b.WriteString(w.theme.PageTitle.Render("Watch"))
	b.WriteString("\n")

	b.WriteString(w.theme.Label.Render("Elapsed: "))
	b.WriteString(w.theme.Value.Render(fmt.Sprintf("%ds", s.ElapsedSeconds)))
	b.WriteString("\n\n")

	if s.WatchActive {
		b.WriteString(w.theme.Good.Render("running"))
		b.WriteString(w.theme.Hint.Render("  enter/space to stop"))
	} else {
		b.WriteString(w.theme.Label.Render("stopped"))
		b.WriteString(w.theme.Hint.Render("  enter/space to start"))
	}

	return b.String()
}

func (w *Watch) Focus() tea.Cmd { return nil }
func (w *Watch) Blur()          {}
