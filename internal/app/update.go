// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package app holds the application state machine for toybox.
package app

import (
	"fmt"
	"strconv"
	"time"
)

// =============================================================================
// DISPATCHER
// =============================================================================

// Apply consumes one event, mutates the session in place, and returns
// the effects the caller must perform. It is the session's only writer.
//
// Apply is total: it never panics on arbitrary input and never returns
// an error. A guess that fails to parse becomes feedback text.
func (s *Session) Apply(ev Event) []Effect {
	switch ev := ev.(type) {
	case IncrementCounter:
		s.Counter++

	case DecrementCounter:
		s.Counter--

	case SetPassword:
		s.Password = ev.Value

	case ClearPassword:
		s.Password = ""

	case GeneratePassword:
		s.Password = s.generatePassword()

	case SetGuess:
		s.GuessInput = ev.Value

	case ClearGuess:
		s.GuessInput = ""

	case CheckGuess:
		return s.checkGuess()

	case NewGame:
		s.secret = int64(1 + s.src.IntN(secretMax))
		s.GuessInput = ""
		s.Attempts = 0
		s.Feedback = FeedbackPrompt
		s.won = false
		s.gameStart = time.Now()

	case ToggleWatch:
		s.WatchActive = !s.WatchActive

	case WatchTick:
		s.ElapsedSeconds = ev.Seconds

	case OpenLink:
		return []Effect{OpenURL{URL: ev.URL}}
	}

	return nil
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// checkGuess parses the guess field as a base-10 signed integer and
// compares it to the secret. Parse failure leaves the attempt counter
// untouched; any successful parse counts as an attempt.
func (s *Session) checkGuess() []Effect {
	guess, err := strconv.ParseInt(s.GuessInput, 10, 64)
	if err != nil {
		s.Feedback = FeedbackInvalid
		return nil
	}

	s.Attempts++

	switch {
	case guess < s.secret:
		s.Feedback = FeedbackHigher
	case guess > s.secret:
		s.Feedback = FeedbackLower
	default:
		s.Feedback = fmt.Sprintf("correct: %d", s.secret)
		if !s.won {
			s.won = true
			return []Effect{RecordGame{
				Secret:     s.secret,
				Attempts:   s.Attempts,
				StartedAt:  s.gameStart,
				FinishedAt: time.Now(),
			}}
		}
	}

	return nil
}

// generatePassword draws PasswordLength independent uniform samples from
// the alphabet. Human-usable randomness, not a security token.
func (s *Session) generatePassword() string {
	buf := make([]byte, PasswordLength)
	for i := range buf {
		buf[i] = passwordAlphabet[s.src.IntN(len(passwordAlphabet))]
	}
	return string(buf)
}
