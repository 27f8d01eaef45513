// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

package rng

import "testing"

func TestIntNRange(t *testing.T) {
	src := New()

	for _, n := range []int{1, 2, 36, 100} {
		for i := 0; i < 1000; i++ {
			v := src.IntN(n)
			if v < 0 || v >= n {
				t.Fatalf("IntN(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestIntNCoversRange(t *testing.T) {
	src := New()

	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		seen[src.IntN(10)] = true
	}

	for v := 0; v < 10; v++ {
		if !seen[v] {
			t.Errorf("IntN(10) never produced %d in 10000 draws", v)
		}
	}
}
