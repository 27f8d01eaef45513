// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package app holds the application state machine for toybox.
//
// # Key Types
//
//   - Session: the single in-memory record holding all mutable state
//   - Event: one user- or timer-originated input to the state machine
//   - Effect: a side effect requested by a transition (open a URL,
//     record a finished game) but never executed by it
//
// # Dispatch Model
//
// All mutation funnels through Session.Apply, which consumes exactly one
// Event, updates the Session in place, and returns zero or more Effects
// for the caller to perform. Apply never blocks, never does I/O, and is
// total: arbitrary textual input degrades to a feedback message, never
// to a panic or an error.
//
// The Session has exactly one owner (the Bubble Tea event loop) and is
// never concurrently mutated; the watch producer is the only concurrent
// collaborator and it communicates solely by sending Events to the loop.
package app
