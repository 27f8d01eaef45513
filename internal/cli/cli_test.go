// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

package cli

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantCmd Command
	}{
		{"no args defaults to TUI", nil, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"stats", []string{"stats"}, CmdStats},
		{"history alias", []string{"history"}, CmdStats},
		{"config", []string{"config"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"unknown falls back to help", []string{"frobnicate"}, CmdHelp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _ := parse(tc.argv)
			if cmd != tc.wantCmd {
				t.Errorf("parse(%v) = %v, want %v", tc.argv, cmd, tc.wantCmd)
			}
		})
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parse([]string{"--quiet", "stats", "--limit", "5"})

	if cmd != CmdStats {
		t.Fatalf("cmd = %v, want CmdStats", cmd)
	}
	if !args.Quiet {
		t.Error("Quiet should be set")
	}
	if args.Limit != 5 {
		t.Errorf("Limit = %d, want 5", args.Limit)
	}
}

func TestParseStatsDefaultLimit(t *testing.T) {
	_, args := parse([]string{"stats"})
	if args.Limit != 20 {
		t.Errorf("Limit = %d, want default 20", args.Limit)
	}
}

func TestParseConfigSubcommand(t *testing.T) {
	_, args := parse([]string{"config", "path"})
	if args.Subcommand != "path" {
		t.Errorf("Subcommand = %q, want %q", args.Subcommand, "path")
	}
}

func TestParseStatsBadLimitKeepsDefault(t *testing.T) {
	_, args := parse([]string{"stats", "--limit", "zero"})
	if args.Limit != 20 {
		t.Errorf("Limit = %d, want default 20", args.Limit)
	}
}
