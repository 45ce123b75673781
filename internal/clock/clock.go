// SPDX-License-Identifier: MPL-2.0

// Package clock abstracts wall-clock reads and timed waits so that
// date-stamped command output and the output reveal can be made deterministic.
package clock

import (
	"sync"
	"time"
)

type (
	// Clock abstracts time operations.
	Clock interface {
		// Now returns the current time.
		Now() time.Time

		// After waits for the duration to elapse and then sends the current time.
		After(d time.Duration) <-chan time.Time
	}

	// Real implements Clock using the system time.
	Real struct{}

	// Fake implements Clock with manually controlled time.
	// Time only moves when Advance or Set is called.
	Fake struct {
		mu      sync.Mutex
		current time.Time
		waiters []waiter
	}

	waiter struct {
		target time.Time
		ch     chan time.Time
	}
)

// Now returns the current system time.
func (Real) Now() time.Time { return time.Now() }

// After returns time.After(d).
func (Real) After(d time.Duration) <-chan time.Time { return time.After(d) }

// NewFake creates a Fake set to initial.
// A zero initial time defaults to 2026-10-15 10:00:00 UTC.
func NewFake(initial time.Time) *Fake {
	if initial.IsZero() {
		initial = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)
	}
	return &Fake{current: initial}
}

// Now returns the fake time.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// After returns a channel that fires once the fake time reaches now+d.
// Non-positive durations fire immediately.
func (c *Fake) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.current
		return ch
	}
	c.waiters = append(c.waiters, waiter{target: c.current.Add(d), ch: ch})
	return ch
}

// Advance moves the fake time forward by d.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
	c.fire()
}

// Set moves the fake time to t.
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
	c.fire()
}

// Waiters returns the number of pending After channels.
func (c *Fake) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// fire must be called with mu held.
func (c *Fake) fire() {
	remaining := c.waiters[:0]
	for _, w := range c.waiters {
		if c.current.Before(w.target) {
			remaining = append(remaining, w)
			continue
		}
		w.ch <- c.current
	}
	c.waiters = remaining
}
