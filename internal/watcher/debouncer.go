// Package watcher reports changes to a single file, coalescing bursts of
// filesystem events into one notification.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default quiet period before a change is reported.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer runs only the last callback of a burst of triggers, once the
// burst has been quiet for the debounce duration.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a Debouncer. A zero duration uses DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback, replacing any callback still pending.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// a timer that fired while being replaced must not run
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce duration.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
