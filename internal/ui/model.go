// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package ui provides the root Bubble Tea model for the toybox TUI.
//
// The root model owns the Session and is its only writer: every input
// becomes an app.Event, Session.Apply consumes it, and the returned
// effects run as fire-and-forget commands. Pages are thin views that
// translate keys into events and render from the session snapshot.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mmurphy-dev/toybox/internal/app"
	"github.com/mmurphy-dev/toybox/internal/browser"
	"github.com/mmurphy-dev/toybox/internal/config"
	"github.com/mmurphy-dev/toybox/internal/stats"
	"github.com/mmurphy-dev/toybox/internal/ui/pages"
	"github.com/mmurphy-dev/toybox/internal/ui/styles"
	"github.com/mmurphy-dev/toybox/internal/watch"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigChangedMsg delivers a hot-reloaded configuration to the loop.
// The config watcher sends it via Program.Send.
type ConfigChangedMsg struct {
	Config *config.Config
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// Options wires the root model's collaborators.
type Options struct {
	Theme    *styles.Theme
	Session  *app.Session
	Producer *watch.Producer // may be nil in tests
	Config   *config.Config
	Logger   zerolog.Logger
	Store    *stats.Store // nil disables game recording
	Version  string
}

// Model is the root Bubble Tea model.
type Model struct {
	theme   *styles.Theme
	session *app.Session

	pages  []pages.Page
	active int

	producer *watch.Producer
	cfg      *config.Config
	logger   zerolog.Logger
	store    *stats.Store
	version  string

	keys      KeyMap
	help      help.Model
	showHelp  bool
	showAbout bool

	width  int
	height int
}

// NewModel creates the root model with all four pages.
func NewModel(opts Options) *Model {
	m := &Model{
		theme:    opts.Theme,
		session:  opts.Session,
		producer: opts.Producer,
		cfg:      opts.Config,
		logger:   opts.Logger,
		store:    opts.Store,
		version:  opts.Version,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: opts.Config.UI.ShowHelp,
	}

	m.pages = []pages.Page{
		pages.NewWatch(opts.Theme),
		pages.NewCounter(opts.Theme),
		pages.NewPassword(opts.Theme),
		pages.NewGuess(opts.Theme),
	}
	m.active = pageIndex(opts.Config.UI.StartPage)

	return m
}

// pageIndex maps a config page name to its tab position.
func pageIndex(name string) int {
	switch name {
	case "counter":
		return 1
	case "password":
		return 2
	case "game":
		return 3
	default:
		return 0
	}
}

// ActivePage reports the active tab index.
func (m *Model) ActivePage() int {
	return m.active
}

// Session exposes the session snapshot for tests.
func (m *Model) Session() *app.Session {
	return m.session
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init focuses the starting page.
func (m *Model) Init() tea.Cmd {
	return m.pages[m.active].Focus()
}

// Update routes one message through the event loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case app.Event:
		// Events sent from outside the loop (the watch producer).
		return m, m.dispatch(msg)

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages go to the active page.
	events, cmd := m.pages[m.active].Update(msg)
	return m, tea.Batch(cmd, m.dispatch(events...))
}

// handleKey deals with global keys, the about overlay, and the page.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showAbout {
		switch msg.String() {
		case "enter":
			return m, m.dispatch(app.OpenLink{URL: RepositoryURL})
		case "esc", "ctrl+a", "q":
			m.showAbout = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		return m, m.selectPage((m.active + 1) % len(m.pages))

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.selectPage((m.active + len(m.pages) - 1) % len(m.pages))

	case key.Matches(msg, m.keys.About):
		m.showAbout = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	events, cmd := m.pages[m.active].Update(msg)
	return m, tea.Batch(cmd, m.dispatch(events...))
}

// selectPage moves focus to another tab.
func (m *Model) selectPage(idx int) tea.Cmd {
	m.pages[m.active].Blur()
	m.active = idx
	return m.pages[m.active].Focus()
}

// applyConfig carries a hot-reloaded config into the running UI.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.theme.SetAccent(cfg.UI.AccentColor)
	m.showHelp = cfg.UI.ShowHelp
	m.logger.Debug().Msg("applied reloaded config")
}

// =============================================================================
// EVENT DISPATCH
// =============================================================================

// dispatch feeds events through the session and turns the returned
// effects into commands. It also keeps the tick producer in step with
// the timer-active flag.
func (m *Model) dispatch(events ...app.Event) tea.Cmd {
	var cmds []tea.Cmd

	for _, ev := range events {
		effects := m.session.Apply(ev)

		if _, ok := ev.(app.ToggleWatch); ok {
			m.syncProducer()
		}

		for _, eff := range effects {
			if cmd := m.effectCmd(eff); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if len(events) > 0 {
		m.pages[m.active].Sync(m.session)
	}

	return tea.Batch(cmds...)
}

// syncProducer starts or stops the tick producer to match the session.
// The producer restarts its sequence from 1; the dispatcher trusts the
// carried tick value, so the display rewinds accordingly.
func (m *Model) syncProducer() {
	if m.producer == nil {
		return
	}
	if m.session.WatchActive {
		m.producer.Start()
	} else {
		m.producer.Stop()
	}
}

// effectCmd turns one effect into a fire-and-forget command. Failures
// are logged and never fed back into the session.
func (m *Model) effectCmd(eff app.Effect) tea.Cmd {
	switch eff := eff.(type) {
	case app.OpenURL:
		logger := m.logger
		return func() tea.Msg {
			if err := browser.Open(eff.URL); err != nil {
				logger.Error().Err(err).Str("url", eff.URL).Msg("failed to open link")
			}
			return nil
		}

	case app.RecordGame:
		if m.store == nil || !m.cfg.Stats.Enabled {
			return nil
		}
		store, logger := m.store, m.logger
		return func() tea.Msg {
			err := store.RecordGame(stats.Game{
				Secret:     eff.Secret,
				Attempts:   eff.Attempts,
				StartedAt:  eff.StartedAt,
				FinishedAt: eff.FinishedAt,
			})
			if err != nil {
				logger.Error().Err(err).Msg("failed to record game")
			}
			return nil
		}
	}
	return nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the header, tab bar, active page, and help bar.
func (m *Model) View() string {
	var b strings.Builder

	title := "toybox — " + m.pages[m.active].Title()
	b.WriteString(m.theme.Header.Render(m.theme.HeaderTitle.Render(title)))
	b.WriteString("\n")

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.showAbout {
		b.WriteString(m.theme.Overlay.Render(renderAbout(m.version, m.width-4)))
	} else {
		b.WriteString(m.pages[m.active].View(m.session, m.width-2))
	}

	if m.showHelp {
		b.WriteString("\n\n")
		b.WriteString(m.theme.HelpBar.Render(m.help.View(m.keys)))
	}

	return b.String()
}

func (m *Model) viewTabs() string {
	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.active {
			tabs[i] = m.theme.TabActive.Render(p.Title())
		} else {
			tabs[i] = m.theme.TabInactive.Render(p.Title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}
