// Copyright (c) 2025 Michael Murphy
// SPDX-License-Identifier: GPL-3.0-only

// Package watch provides the background tick producer for the watch page.
package watch

import (
	"sync"
	"time"

	"github.com/mmurphy-dev/toybox/internal/app"
)

// DefaultInterval is the production tick interval.
const DefaultInterval = time.Second

// =============================================================================
// PRODUCER
// =============================================================================

// Producer emits one app.WatchTick per interval while started. The tick
// counter starts at 1 on every (re)start; it deliberately does not read
// the session's elapsed time, so a stop/start cycle rewinds the emitted
// sequence even though the last displayed value may have been higher.
//
// One producer feeds one consumer (the program mailbox, via send). Stop
// takes effect within one interval: the run goroutine observes the stop
// channel before it can emit again.
type Producer struct {
	mu       sync.Mutex
	send     func(app.Event)
	interval time.Duration
	stop     chan struct{}
}

// NewProducer creates a stopped producer that delivers ticks via send.
// send is typically tea.Program.Send behind a program-reference guard.
func NewProducer(send func(app.Event)) *Producer {
	return &Producer{
		send:     send,
		interval: DefaultInterval,
	}
}

// SetInterval overrides the tick interval. Only honored while stopped;
// tests use it to avoid real one-second waits.
func (p *Producer) SetInterval(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil && d > 0 {
		p.interval = d
	}
}

// Start launches the tick goroutine. Starting a running producer is a
// no-op, so a doubled toggle cannot create a second emitter.
func (p *Producer) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	go p.run(p.stop, p.interval)
}

// Stop halts emission. Safe to call on a stopped producer.
func (p *Producer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}

// Running reports whether the producer is currently emitting.
func (p *Producer) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

func (p *Producer) run(stop chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var n uint64
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			n++
			p.send(app.WatchTick{Seconds: n})
		}
	}
}
