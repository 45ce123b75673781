// SPDX-License-Identifier: MPL-2.0

package session

import (
	"github.com/charmbracelet/log"

	"github.com/devifyx/devterm/internal/builtin"
	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/vfs"
)

// Option configures a Session.
type Option func(*Session)

// WithUsername sets the display user name.
func WithUsername(name string) Option {
	return func(s *Session) { s.username = name }
}

// WithHostname sets the display host name.
func WithHostname(name string) Option {
	return func(s *Session) { s.hostname = name }
}

// WithHome sets the home directory. It is also the initial working directory.
func WithHome(dir string) Option {
	return func(s *Session) { s.home = dir }
}

// WithFS replaces the seeded filesystem.
func WithFS(tree *vfs.Tree) Option {
	return func(s *Session) { s.fs = tree }
}

// WithRegistry replaces builtin.DefaultRegistry.
func WithRegistry(r *builtin.Registry) Option {
	return func(s *Session) { s.registry = r }
}

// WithClock sets the clock used for date-stamped output.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the logger. Dispatches are logged at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithObserver registers fn to be called after every dispatch with the
// command name and whether it was a known builtin.
func WithObserver(fn func(command string, known bool)) Option {
	return func(s *Session) { s.observe = fn }
}
