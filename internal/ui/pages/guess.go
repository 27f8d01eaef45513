// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package pages provides the four toybox pages.
package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mmurphy-dev/toybox/internal/app"
	"github.com/mmurphy-dev/toybox/internal/ui/styles"
)

// Guess is the number-guessing-game page.
type Guess struct {
	theme *styles.Theme
	input textinput.Model
}

// NewGuess creates the guessing-game page.
func NewGuess(theme *styles.Theme) *Guess {
	ti := textinput.New()
	ti.Placeholder = "Enter your number"
	ti.CharLimit = 20
	ti.Width = 24

	return &Guess{theme: theme, input: ti}
}

func (g *Guess) Title() string { return "Game" }

func (g *Guess) Update(msg tea.Msg) ([]app.Event, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return []app.Event{app.CheckGuess{}}, nil
		case "ctrl+x":
			return []app.Event{app.ClearGuess{}}, nil
		case "ctrl+n":
			return []app.Event{app.NewGame{}}, nil
		}
	}

	before := g.input.Value()
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)

	if after := g.input.Value(); after != before {
		return []app.Event{app.SetGuess{Value: after}}, cmd
	}
	return nil, cmd
}

func (g *Guess) Sync(s *app.Session) {
	if g.input.Value() != s.GuessInput {
		g.input.SetValue(s.GuessInput)
		g.input.CursorEnd()
	}
}

func (g *Guess) View(s *app.Session, width int) string {
	var b strings.Builder

	b.WriteString(g.theme.PageTitle.Render("Guess the number"))
	b.WriteString("\n")

	b.WriteString(g.theme.InputContainer.Render(g.input.View()))
	b.WriteString("\n\n")

	b.WriteString(g.feedbackStyle(s).Render(trim(s.Feedback, width)))
	b.WriteString("\n")

	b.WriteString(g.theme.Label.Render(trim(fmt.Sprintf("Number of attempts: %d", s.Attempts), width)))
	b.WriteString("\n\n")

	b.WriteString(g.theme.Hint.Render("enter to check, ctrl+n for a new game, ctrl+x to clear"))

	return b.String()
}

func (g *Guess) Focus() tea.Cmd {
	return g.input.Focus()
}

func (g *Guess) Blur() {
	g.input.Blur()
}

// feedbackStyle colors the feedback line by outcome.
func (g *Guess) feedbackStyle(s *app.Session) lipgloss.Style {
	switch {
	case strings.HasPrefix(s.Feedback, "correct"):
		return g.theme.Good
	case s.Feedback == app.FeedbackInvalid:
		return g.theme.Bad
	default:
		return g.theme.Feedback
	}
}

// trim shortens a line to the available width, terminal-width aware.
func trim(line string, width int) string {
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "…")
}
