package search

import (
	"sync"
	"time"
	"unicode/utf8"
)

// Decision is what a keystroke resulted in
type Decision int

const (
	// DecisionClear means the query is below the minimum length; the result
	// set should be cleared now and nothing was scheduled.
	DecisionClear Decision = iota
	// DecisionScheduled means a lookup will fire after the quiet period
	// unless another keystroke or a manual trigger arrives first.
	DecisionScheduled
)

// FireFunc receives the debounced query along with the generation it was
// scheduled under. It runs on the timer goroutine.
type FireFunc func(query string, gen uint64)

// Debouncer coalesces bursts of keystrokes into a single lookup
type Debouncer struct {
	delay     time.Duration
	minLength int
	fire      FireFunc

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer with the given quiet period and minimum
// query length
func NewDebouncer(delay time.Duration, minLength int, fire FireFunc) *Debouncer {
	return &Debouncer{
		delay:     delay,
		minLength: minLength,
		fire:      fire,
	}
}

// Keystroke registers a new candidate query
func (d *Debouncer) Keystroke(query string) Decision {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	if utf8.RuneCountInString(query) < d.minLength {
		return DecisionClear
	}

	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.gen != gen {
			// Replaced after the timer had already started running
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.fire(query, gen)
	})

	return DecisionScheduled
}

// Trigger cancels any pending fire. The caller issues the lookup itself.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Current reports whether gen is still the latest scheduled generation.
// A fire that lost a race with a later keystroke must be ignored.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}

// Pending reports whether a fire is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop releases the timer handle
func (d *Debouncer) Stop() {
	d.Trigger()
}

// cancelLocked stops the live timer and bumps the generation so any
// in-progress fire for it becomes stale.
func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
