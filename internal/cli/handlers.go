// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// handlers.go - non-TUI command handlers for toybox.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mmurphy-dev/toybox/internal/config"
	"github.com/mmurphy-dev/toybox/internal/stats"
)

// HandleStats prints the guessing-game history.
func HandleStats(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Println("No games recorded yet.")
		return nil
	}

	store, err := stats.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	sum, err := store.Summarize()
	if err != nil {
		return err
	}
	if sum.Games == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("Games won: %d   best: %d attempts   mean: %.1f attempts\n\n",
		sum.Games, sum.BestAttempts, sum.MeanAttempts)

	games, err := store.Games(args.Limit)
	if err != nil {
		return err
	}

	fmt.Printf("%-20s  %8s  %8s  %s\n", "FINISHED", "SECRET", "ATTEMPTS", "DURATION")
	for _, g := range games {
		fmt.Printf("%-20s  %8d  %8d  %s\n",
			g.FinishedAt.Local().Format("2006-01-02 15:04:05"),
			g.Secret,
			g.Attempts,
			g.FinishedAt.Sub(g.StartedAt).Round(time.Second).String(),
		)
	}
	return nil
}

// HandleConfig shows the active configuration or its file path.
func HandleConfig(args Args) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	switch args.Subcommand {
	case "path":
		fmt.Println(path)
		return nil

	case "", "show":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Config file:  %s\n", path)
		fmt.Printf("Start page:   %s\n", cfg.UI.StartPage)
		fmt.Printf("Accent color: %s\n", cfg.UI.AccentColor)
		fmt.Printf("Show help:    %t\n", cfg.UI.ShowHelp)
		fmt.Printf("Stats:        %t\n", cfg.Stats.Enabled)
		fmt.Printf("Log level:    %s\n", cfg.Log.Level)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
}
