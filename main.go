// toybox - a four-page terminal playground.
//
// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only
package main

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmurphy-dev/toybox/internal/app"
	"github.com/mmurphy-dev/toybox/internal/cli"
	"github.com/mmurphy-dev/toybox/internal/config"
	"github.com/mmurphy-dev/toybox/internal/logging"
	"github.com/mmurphy-dev/toybox/internal/rng"
	"github.com/mmurphy-dev/toybox/internal/stats"
	"github.com/mmurphy-dev/toybox/internal/ui"
	"github.com/mmurphy-dev/toybox/internal/ui/styles"
	"github.com/mmurphy-dev/toybox/internal/watch"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference so background producers can send into the
// loop before and after the program pointer exists.
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdStats:
		if err := cli.HandleStats(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// sendEvent delivers an event into the running program, dropping it if
// the program is not up yet (startup) or already gone (shutdown).
func sendEvent(ev app.Event) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(ev)
	}
}

func runTUI(args cli.Args) {
	if !cli.IsOutputTTY() {
		fmt.Fprintln(os.Stderr, "toybox needs an interactive terminal; try 'toybox stats' for plain output")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to a file; the TUI owns the terminal.
	logger := logging.Nop()
	if logPath, err := cfg.LogPath(); err == nil {
		if l, f, err := logging.Open(logPath, cfg.Log.Level); err == nil {
			logger = l
			defer f.Close()
		}
	}
	logger.Info().Str("version", Version).Msg("starting toybox")

	// Game history store. Recording failures must never break the UI,
	// so a store that fails to open just disables recording.
	var store *stats.Store
	if cfg.Stats.Enabled {
		if dbPath, err := cfg.DatabasePath(); err == nil {
			if s, err := stats.Open(dbPath); err == nil {
				store = s
				defer store.Close()
			} else {
				logger.Error().Err(err).Msg("failed to open game history, recording disabled")
			}
		}
	}

	theme := styles.NewTheme(cfg.UI.AccentColor)
	session := app.NewSession(rng.New())
	producer := watch.NewProducer(sendEvent)
	defer producer.Stop()

	m := ui.NewModel(ui.Options{
		Theme:    theme,
		Session:  session,
		Producer: producer,
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Version:  Version,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Hot-reload the config file while the TUI runs.
	if cfgPath, err := config.Path(); err == nil {
		watcher, err := config.NewWatcher(cfgPath, logger, func(fresh *config.Config) {
			programMu.Lock()
			prog := programRef
			programMu.Unlock()
			if prog != nil {
				prog.Send(ui.ConfigChangedMsg{Config: fresh})
			}
		})
		if err == nil {
			if err := watcher.Watch(); err != nil {
				logger.Error().Err(err).Msg("config watcher failed to start")
			}
			defer watcher.Close()
		} else {
			logger.Error().Err(err).Msg("config watcher unavailable")
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running toybox: %v\n", err)
		os.Exit(1)
	}

	logger.Info().Msg("toybox exited")
}
