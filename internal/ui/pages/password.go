// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package pages provides the four toybox pages.
package pages

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmurphy-dev/toybox/internal/app"
	"github.com/mmurphy-dev/toybox/internal/ui/styles"
)

// Password is the random-password page. The text input is editable, so
// manual edits flow into the session as SetPassword events while the
// generate key replaces the field wholesale.
type Password struct {
	theme *styles.Theme
	input textinput.Model
}

// NewPassword creates the password page.
func NewPassword(theme *styles.Theme) *Password {
	ti := textinput.New()
	ti.Placeholder = "Your password will be here!"
	ti.CharLimit = 64
	ti.Width = 40

	return &Password{theme: theme, input: ti}
}

func (p *Password) Title() string { return "Password" }

func (p *Password) Update(msg tea.Msg) ([]app.Event, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return []app.Event{app.GeneratePassword{}}, nil
		case "ctrl+x":
			return []app.Event{app.ClearPassword{}}, nil
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	if after := p.input.Value(); after != before {
		return []app.Event{app.SetPassword{Value: after}}, cmd
	}
	return nil, cmd
}

func (p *Password) Sync(s *app.Session) {
	if p.input.Value() != s.Password {
		p.input.SetValue(s.Password)
		p.input.CursorEnd()
	}
}

func (p *Password) View(s *app.Session, width int) string {
	var b strings.Builder

	b.WriteString(p.theme.PageTitle.Render("Password"))
	b.WriteString("\n")

	b.WriteString(p.theme.InputContainer.Render(p.input.View()))
	b.WriteString("\n\n")

	b.WriteString(p.theme.Hint.Render("enter to generate, ctrl+x to clear"))

	return b.String()
}

func (p *Password) Focus() tea.Cmd {
	return p.input.Focus()
}

func (p *Password) Blur() {
	p.input.Blur()
}
