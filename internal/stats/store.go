// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package stats persists finished guessing games to a local SQLite
// database and answers history queries for the stats command.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// TYPES
// =============================================================================

// Game is one finished guessing game.
type Game struct {
	ID         string
	Secret     int64
	Attempts   uint64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Summary aggregates the recorded history.
type Summary struct {
	Games        int64
	BestAttempts int64
	MeanAttempts float64
}

// =============================================================================
// STORE
// =============================================================================

// Store is the SQLite-backed game history.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	secret      INTEGER NOT NULL,
	attempts    INTEGER NOT NULL,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_games_finished ON games(finished_at DESC);
`

// Open opens (creating if necessary) the history database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordGame inserts one finished game. A missing ID is filled in.
func (s *Store) RecordGame(g Game) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, secret, attempts, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?)`,
		g.ID, g.Secret, int64(g.Attempts), g.StartedAt.UTC(), g.FinishedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}
	return nil
}

// Games returns up to limit games, most recently finished first.
func (s *Store) Games(limit int) ([]Game, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, secret, attempts, started_at, finished_at
		 FROM games ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		var attempts int64
		if err := rows.Scan(&g.ID, &g.Secret, &attempts, &g.StartedAt, &g.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		g.Attempts = uint64(attempts)
		games = append(games, g)
	}
	return games, rows.Err()
}

// Summarize aggregates the full history.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MIN(attempts), 0),
		        COALESCE(AVG(attempts), 0)
		 FROM games`,
	).Scan(&sum.Games, &sum.BestAttempts, &sum.MeanAttempts)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize games: %w", err)
	}
	return sum, nil
}
