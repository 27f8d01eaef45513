// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package app holds the application state machine for toybox.
package app

import "time"

// Effect is a side effect requested by a transition. The dispatcher
// only describes effects; the event loop performs them, fire-and-forget,
// and any failure is logged rather than fed back into the session.
type Effect interface {
	isEffect()
}

// OpenURL asks the loop to open a URL with the system handler.
type OpenURL struct {
	URL string
}

// RecordGame asks the loop to persist a finished guessing game.
type RecordGame struct {
	Secret     int64
	Attempts   uint64
	StartedAt  time.Time
	FinishedAt time.Time
}

func (OpenURL) isEffect()    {}
func (RecordGame) isEffect() {}
