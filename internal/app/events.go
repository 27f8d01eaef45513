// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package app holds the application state machine for toybox.
//
// This file enumerates every event the state machine recognizes. Events
// are plain immutable values; they satisfy tea.Msg, so the watch producer
// and the UI layer can send them straight into the program's mailbox.
package app

// Event is one input to the state machine. The interface is sealed so
// the dispatcher's switch is exhaustive over this package's types.
type Event interface {
	isEvent()
}

// IncrementCounter adds one to the counter. No bounds.
type IncrementCounter struct{}

// DecrementCounter subtracts one from the counter. No bounds.
type DecrementCounter struct{}

// SetPassword replaces the password field verbatim (manual edits).
type SetPassword struct {
	Value string
}

// ClearPassword empties the password field.
type ClearPassword struct{}

// GeneratePassword replaces the password with a fresh random one.
type GeneratePassword struct{}

// SetGuess replaces the guess field verbatim.
type SetGuess struct {
	Value string
}

// ClearGuess empties the guess field.
type ClearGuess struct{}

// CheckGuess parses the guess field and compares it to the secret.
type CheckGuess struct{}

// NewGame resamples the secret and resets the guessing-game state.
type NewGame struct{}

// ToggleWatch flips the watch on or off. Turning it off freezes the
// elapsed time; turning it back on resumes counting from that value.
type ToggleWatch struct{}

// WatchTick carries the producer's tick counter. The dispatcher trusts
// the carried value instead of incrementing locally, so a restarted
// producer restarts the displayed time from 1.
type WatchTick struct {
	Seconds uint64
}

// OpenLink asks for the URL to be opened externally. It never mutates
// the session; the dispatcher returns it as an OpenURL effect.
type OpenLink struct {
	URL string
}

func (IncrementCounter) isEvent() {}
func (DecrementCounter) isEvent() {}
func (SetPassword) isEvent()      {}
func (ClearPassword) isEvent()    {}
func (GeneratePassword) isEvent() {}
func (SetGuess) isEvent()         {}
func (ClearGuess) isEvent()       {}
func (CheckGuess) isEvent()       {}
func (NewGame) isEvent()          {}
func (ToggleWatch) isEvent()      {}
func (WatchTick) isEvent()        {}
func (OpenLink) isEvent()         {}
