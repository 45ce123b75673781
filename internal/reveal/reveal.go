// SPDX-License-Identifier: MPL-2.0

// Package reveal produces command output one character at a time.
//
// Revealing is a presentation concern: the session hands over complete text
// and the view decides whether to show it at once or step by step. A Stepper
// is driven by the caller's own ticks (e.g. a bubbletea tick command); Stream
// drives itself with a clock and stops when its context is cancelled.
package reveal

import (
	"context"
	"io"
	"time"

	"github.com/devifyx/devterm/internal/clock"
)

// DefaultInterval is the delay between two revealed characters.
const DefaultInterval = 30 * time.Millisecond

// Stepper reveals a text rune by rune.
type Stepper struct {
	runes []rune
	shown int
}

// NewStepper creates a stepper with nothing revealed yet.
func NewStepper(text string) *Stepper {
	return &Stepper{runes: []rune(text)}
}

// Step reveals one more rune and returns the revealed prefix.
// done reports whether the whole text is now visible.
func (s *Stepper) Step() (prefix string, done bool) {
	if s.shown < len(s.runes) {
		s.shown++
	}
	return s.Revealed(), s.Done()
}

// Skip reveals the remaining text at once.
func (s *Stepper) Skip() string {
	s.shown = len(s.runes)
	return s.Revealed()
}

// Revealed returns the visible prefix.
func (s *Stepper) Revealed() string {
	return string(s.runes[:s.shown])
}

// Done reports whether the whole text is visible.
func (s *Stepper) Done() bool {
	return s.shown >= len(s.runes)
}

// Stream writes text to w one rune per interval.
// A non-positive interval writes everything at once. When ctx is cancelled
// Stream stops and returns ctx.Err(); the runes written so far stay written.
func Stream(ctx context.Context, w io.Writer, text string, interval time.Duration, c clock.Clock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if interval <= 0 {
		_, err := io.WriteString(w, text)
		return err
	}
	if c == nil {
		c = clock.Real{}
	}

	for _, r := range text {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.After(interval):
		}
		if _, err := io.WriteString(w, string(r)); err != nil {
			return err
		}
	}
	return nil
}
