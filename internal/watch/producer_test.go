// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

package watch

import (
	"sync"
	"testing"
	"time"

	"github.com/mmurphy-dev/toybox/internal/app"
)

// collector gathers emitted events behind a mutex so the test can read
// them while the producer goroutine is still running.
type collector struct {
	mu    sync.Mutex
	ticks []uint64
}

func (c *collector) send(ev app.Event) {
	tick, ok := ev.(app.WatchTick)
	if !ok {
		return
	}
	c.mu.Lock()
	c.ticks = append(c.ticks, tick.Seconds)
	c.mu.Unlock()
}

func (c *collector) snapshot() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]uint64, len(c.ticks))
	copy(out, c.ticks)
	return out
}

func waitForTicks(t *testing.T, c *collector, n int) []uint64 {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ticks := c.snapshot(); len(ticks) >= n {
			return ticks
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d ticks, got %d", n, len(c.snapshot()))
	return nil
}

func TestProducerEmitsStrictlyIncreasingFromOne(t *testing.T) {
	c := &collector{}
	p := NewProducer(c.send)
	p.SetInterval(5 * time.Millisecond)

	p.Start()
	defer p.Stop()

	ticks := waitForTicks(t, c, 5)
	for i, got := range ticks[:5] {
		if got != uint64(i+1) {
			t.Fatalf("tick %d = %d, want %d", i, got, i+1)
		}
	}
}

func TestProducerStopsPromptly(t *testing.T) {
	c := &collector{}
	p := NewProducer(c.send)
	p.SetInterval(5 * time.Millisecond)

	p.Start()
	waitForTicks(t, c, 2)
	p.Stop()

	// Allow any in-flight tick to land, then verify silence.
	time.Sleep(20 * time.Millisecond)
	before := len(c.snapshot())
	time.Sleep(30 * time.Millisecond)
	after := len(c.snapshot())

	if after != before {
		t.Errorf("producer emitted %d ticks after Stop", after-before)
	}
	if p.Running() {
		t.Error("Running() = true after Stop")
	}
}

func TestProducerRestartsFromOne(t *testing.T) {
	c := &collector{}
	p := NewProducer(c.send)
	p.SetInterval(5 * time.Millisecond)

	p.Start()
	waitForTicks(t, c, 3)
	p.Stop()
	time.Sleep(20 * time.Millisecond)

	mark := len(c.snapshot())
	p.Start()
	defer p.Stop()
	ticks := waitForTicks(t, c, mark+2)

	if ticks[mark] != 1 {
		t.Errorf("first tick after restart = %d, want 1", ticks[mark])
	}
	if ticks[mark+1] != 2 {
		t.Errorf("second tick after restart = %d, want 2", ticks[mark+1])
	}
}

func TestProducerDoubleStartIsNoOp(t *testing.T) {
	c := &collector{}
	p := NewProducer(c.send)
	p.SetInterval(5 * time.Millisecond)

	p.Start()
	p.Start() // must not spawn a second emitter
	defer p.Stop()

	ticks := waitForTicks(t, c, 4)
	for i := 1; i < len(ticks); i++ {
		if ticks[i] != ticks[i-1]+1 {
			t.Fatalf("ticks not strictly sequential: %v", ticks)
		}
	}
}

func TestProducerStopWhenStopped(t *testing.T) {
	p := NewProducer(func(app.Event) {})
	p.Stop() // must not panic
	if p.Running() {
		t.Error("Running() = true for never-started producer")
	}
}
