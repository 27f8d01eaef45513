// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmurphy-dev/toybox/internal/app"
	"github.com/mmurphy-dev/toybox/internal/config"
	"github.com/mmurphy-dev/toybox/internal/logging"
	"github.com/mmurphy-dev/toybox/internal/rng"
	"github.com/mmurphy-dev/toybox/internal/ui/styles"
	"github.com/mmurphy-dev/toybox/internal/watch"
)

// scriptedSource pins the session secret for deterministic tests.
type scriptedSource struct{ v int }

func (s scriptedSource) IntN(n int) int { return s.v % n }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	theme := styles.NewTheme(cfg.UI.AccentColor)

	m := NewModel(Options{
		Theme:    theme,
		Session:  app.NewSession(scriptedSource{v: 49}), // secret = 50
		Producer: watch.NewProducer(func(app.Event) {}),
		Config:   cfg,
		Logger:   logging.Nop(),
		Version:  "test",
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStartPageFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.UI.StartPage = "game"
	theme := styles.NewTheme(cfg.UI.AccentColor)

	m := NewModel(Options{
		Theme:   theme,
		Session: app.NewSession(rng.New()),
		Config:  cfg,
		Logger:  logging.Nop(),
		Version: "test",
	})

	if m.ActivePage() != 3 {
		t.Errorf("active page = %d, want 3 (game)", m.ActivePage())
	}
}

func TestTabCyclesPages(t *testing.T) {
	m := newTestModel(t)

	for want := 1; want < 5; want++ {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.ActivePage() != want%4 {
			t.Fatalf("after %d tabs, active = %d, want %d", want, m.ActivePage(), want%4)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActivePage() != 3 {
		t.Errorf("shift+tab from page 0 should wrap to 3, got %d", m.ActivePage())
	}
}

func TestCounterKeys(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // to counter page

	m.Update(keyRunes('+'))
	m.Update(keyRunes('+'))
	m.Update(keyRunes('-'))

	if got := m.Session().Counter; got != 1 {
		t.Errorf("counter = %d, want 1", got)
	}
}

func TestWatchToggleDrivesProducer(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRunes('s'))
	if !m.Session().WatchActive {
		t.Fatal("watch should be active after toggle")
	}
	if !m.producer.Running() {
		t.Fatal("producer should be running while watch is active")
	}

	m.Update(keyRunes('s'))
	if m.producer.Running() {
		t.Fatal("producer should stop when watch is deactivated")
	}
}

func TestProducerTickReachesSession(t *testing.T) {
	m := newTestModel(t)

	m.Update(app.WatchTick{Seconds: 7})
	if got := m.Session().ElapsedSeconds; got != 7 {
		t.Errorf("elapsed = %d, want 7", got)
	}
}

func TestGuessFlow(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ { // to game page
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	for _, r := range "200" {
		m.Update(keyRunes(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	s := m.Session()
	if s.Feedback != app.FeedbackLower {
		t.Errorf("feedback = %q, want %q", s.Feedback, app.FeedbackLower)
	}
	if s.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", s.Attempts)
	}
}

func TestPasswordGenerateAndClear(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab}) // to password page

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := len(m.Session().Password); got != app.PasswordLength {
		t.Fatalf("password length = %d, want %d", got, app.PasswordLength)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.Session().Password != "" {
		t.Errorf("password = %q after clear, want empty", m.Session().Password)
	}
}

func TestConfigChangedAppliesUISettings(t *testing.T) {
	m := newTestModel(t)

	cfg := config.Default()
	cfg.UI.ShowHelp = false
	cfg.UI.AccentColor = "#FF0000"
	m.Update(ConfigChangedMsg{Config: cfg})

	if m.showHelp {
		t.Error("help bar should follow reloaded config")
	}
}

func TestAboutOverlay(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if !m.showAbout {
		t.Fatal("about overlay should open on ctrl+a")
	}
	if !strings.Contains(m.View(), "toybox") {
		t.Error("about view should mention the app name")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showAbout {
		t.Error("about overlay should close on esc")
	}
}

func TestViewShowsActivePage(t *testing.T) {
	m := newTestModel(t)

	if !strings.Contains(m.View(), "Elapsed") {
		t.Error("watch page should render the elapsed time")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "Counter") {
		t.Error("counter page should render after tab")
	}
}
