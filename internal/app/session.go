// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package app holds the application state machine for toybox.
package app

import (
	"time"

	"github.com/mmurphy-dev/toybox/internal/rng"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// PasswordLength is the fixed length of generated passwords.
	PasswordLength = 16

	// passwordAlphabet is the fixed 36-symbol alphabet passwords draw from.
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// secretMax is the upper bound (inclusive) of the guessing-game secret.
	secretMax = 100
)

// Feedback strings shown on the guessing-game page. CheckGuess compares
// against these verbatim, so they double as the page's contract.
const (
	FeedbackPrompt  = "A number from 1 to 100 is hidden. Guess it!"
	FeedbackInvalid = "invalid input"
	FeedbackHigher  = "go higher"
	FeedbackLower   = "go lower"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is the single aggregate of mutable application state. It is
// created once at startup and mutated exclusively through Apply.
type Session struct {
	// Watch page
	ElapsedSeconds uint64 // frozen while the watch is inactive
	WatchActive    bool

	// Counter page
	Counter int64 // unbounded

	// Password page
	Password string // empty or exactly PasswordLength chars

	// Guessing-game page
	GuessInput string // raw user text, not necessarily parseable
	Feedback   string
	Attempts   uint64 // guesses since the secret was last chosen

	// secret is never exposed to the rendering layer; the correct-guess
	// feedback is the only place it surfaces.
	secret int64

	// won gates the game-record effect so a repeated correct guess does
	// not record the same game twice. Attempts still increments.
	won       bool
	gameStart time.Time

	src rng.Source
}

// NewSession creates the session with a freshly randomized secret, all
// counters zeroed, and the initial guessing-game prompt.
func NewSession(src rng.Source) *Session {
	return &Session{
		Feedback:  FeedbackPrompt,
		secret:    int64(1 + src.IntN(secretMax)),
		gameStart: time.Now(),
		src:       src,
	}
}

// Secret reports the current secret number. It exists for the history
// record written when a game is won; the UI never displays it.
func (s *Session) Secret() int64 {
	return s.secret
}
