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

// Counter is the plus/minus counter page.
type Counter struct {
	theme *styles.Theme
}

// NewCounter creates the counter page.
func NewCounter(theme *styles.Theme) *Counter {
	return &Counter{theme: theme}
}

func (c *Counter) Title() string { return "Counter" }

func (c *Counter) Update(msg tea.Msg) ([]app.Event, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "+", "=", "right", "up":
		return []app.Event{app.IncrementCounter{}}, nil
	case "-", "_", "left", "down":
		return []app.Event{app.DecrementCounter{}}, nil
	}
	return nil, nil
}

func (c *Counter) Sync(*app.Session) {}

func (c *Counter) View(s *app.Session, width int) string {
	var b strings.Builder

	b.WriteString(c.theme.PageTitle.Render("Counter"))
	b.WriteString("\n")

	b.WriteString(c.theme.Label.Render("-  "))
	b.WriteString(c.theme.Value.Render(fmt.Sprintf("%d", s.Counter)))
	b.WriteString(c.theme.Label.Render("  +"))
	b.WriteString("\n\n")

	b.WriteString(c.theme.Hint.Render("+/- or arrow keys to count"))

	return b.String()
}

func (c *Counter) Focus() tea.Cmd { return nil }
func (c *Counter) Blur()          {}
