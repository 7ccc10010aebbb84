// Package search debounces search-as-you-type input.
package search

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a search runs.
const DefaultDelay = 300 * time.Millisecond

// Debouncer runs fn with the latest query once input has been quiet for delay.
type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	fn         func(query string)
	timer      *time.Timer
	generation uint64
	stopped    bool
}

// New creates a debouncer, non-positive delay means DefaultDelay.
func New(fn func(query string), delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{fn: fn, delay: delay}
}

// Trigger schedules fn(query), cancelling any pending call.
func (d *Debouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.cancel()
	generation := d.generation
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.stopped || generation != d.generation {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(query)
	})
}

// Flush cancels any pending call and runs fn(query) now (the Enter key).
func (d *Debouncer) Flush(query string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.cancel()
	d.mu.Unlock()
	d.fn(query)
}

// Stop cancels any pending call, later calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel()
	d.stopped = true
}

// cancel invalidates the pending timer, caller holds mu.
func (d *Debouncer) cancel() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
