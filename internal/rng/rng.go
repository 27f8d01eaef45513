// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package rng provides the process-wide uniform randomness source.
//
// The generator is deliberately not cryptographic: it feeds the password
// page and the guessing game, both of which want human-usable randomness
// rather than secret material. Callers that need secrets must not use it.
package rng

import "math/rand/v2"

// Source yields uniform integers. It is the capability handed to state
// transitions so that tests can substitute a deterministic fake.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int
}

// New returns the production source, backed by math/rand/v2.
// It needs no seeding and cannot fail; successive calls are independent.
func New() Source {
	return mathSource{}
}

type mathSource struct{}

func (mathSource) IntN(n int) int {
	return rand.IntN(n)
}
