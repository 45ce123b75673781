// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/devifyx/devterm/internal/builtin"
	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/vfs"
	"github.com/devifyx/devterm/pkg/vpath"
)

const (
	// DefaultUsername is the user name of a session created without WithUsername.
	DefaultUsername = "user"
	// DefaultHostname is the host name of a session created without WithHostname.
	DefaultHostname = "devifyx"

	// notBrowsing is the history cursor value outside of navigation.
	notBrowsing = -1
)

// Session is one run of the virtual shell.
type Session struct {
	fs       *vfs.Tree
	registry *builtin.Registry
	clock    clock.Clock
	logger   *log.Logger
	observe  func(command string, known bool)

	username string
	hostname string
	home     string

	cwd          string
	history      []string
	historyIndex int
	pending      string
	transcript   []Record
}

// New creates a session on a freshly seeded filesystem, starting in the home directory.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		username:     DefaultUsername,
		hostname:     DefaultHostname,
		home:         vfs.HomeDir,
		historyIndex: notBrowsing,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		s.fs = vfs.Seed()
	}
	if s.registry == nil {
		s.registry = builtin.DefaultRegistry
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	home := s.home
	if !vpath.IsAbs(home) || !s.fs.IsDir(home) {
		return nil, &InvalidHomeError{Path: home}
	}
	s.home = vpath.Resolve(home, vpath.Root)
	s.cwd = s.home

	return s, nil
}

// Submit interprets one raw input line.
//
// Blank lines are ignored. Otherwise the trimmed line is appended to the
// history, echoed as an input record, split on whitespace and dispatched.
// Text outcomes append one output record, even when the text is empty. A
// suppressed outcome discards the whole transcript, including the echo.
func (s *Session) Submit(ctx context.Context, raw string) Result {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Result{}
	}

	s.history = append(s.history, line)
	s.historyIndex = notBrowsing
	s.pending = ""

	records := []Record{{Kind: RecordInput, Content: s.Prompt() + " " + line}}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	outcome, known := s.dispatch(ctx, name, args)

	if s.observe != nil {
		s.observe(name, known)
	}

	if outcome.IsSuppressed() {
		s.transcript = nil
		return Result{Cleared: true}
	}

	records = append(records, Record{Kind: RecordOutput, Content: outcome.Text})
	s.transcript = append(s.transcript, records...)
	return Result{Records: records}
}

// dispatch runs name against the registry with this session's state.
func (s *Session) dispatch(ctx context.Context, name string, args []string) (builtin.Outcome, bool) {
	_, known := s.registry.Lookup(name)
	if !known {
		s.logger.Debug("command not found", "command", name)
		return builtin.NotFound(name), false
	}

	s.logger.Debug("dispatch", "command", name, "args", args, "cwd", s.cwd)

	hc := &builtin.HandlerContext{
		FS:      s.fs,
		Dir:     s.cwd,
		Home:    s.home,
		User:    s.username,
		Host:    s.hostname,
		Clock:   s.clock,
		Chdir:   s.chdir,
		History: s.History,
	}
	return s.registry.Run(builtin.WithHandlerContext(ctx, hc), name, args), true
}

// chdir keeps the working directory invariant: only existing directories are accepted.
func (s *Session) chdir(dir string) {
	if !s.fs.IsDir(dir) {
		s.logger.Warn("refusing to change into non-directory", "dir", dir)
		return
	}
	s.cwd = dir
}

// Previous recalls the next older history entry and returns the pending input.
// At the oldest entry it is a no-op.
func (s *Session) Previous() string {
	if s.historyIndex < len(s.history)-1 {
		s.historyIndex++
		s.pending = s.history[len(s.history)-1-s.historyIndex]
	}
	return s.pending
}

// Next recalls the next newer history entry and returns the pending input.
// Moving past the newest entry leaves history browsing with empty input.
func (s *Session) Next() string {
	switch {
	case s.historyIndex > 0:
		s.historyIndex--
		s.pending = s.history[len(s.history)-1-s.historyIndex]
	case s.historyIndex == 0:
		s.historyIndex = notBrowsing
		s.pending = ""
	}
	return s.pending
}

// Prompt renders "user@host:cwd$".
func (s *Session) Prompt() string {
	return s.username + "@" + s.hostname + ":" + s.cwd + "$"
}

// Cwd returns the current working directory.
func (s *Session) Cwd() string { return s.cwd }

// Home returns the home directory.
func (s *Session) Home() string { return s.home }

// Username returns the display user name.
func (s *Session) Username() string { return s.username }

// Hostname returns the display host name.
func (s *Session) Hostname() string { return s.hostname }

// HistoryLen returns the number of submitted lines.
func (s *Session) HistoryLen() int { return len(s.history) }

// History returns the submitted lines, oldest first.
func (s *Session) History() []string { return slices.Clone(s.history) }

// HistoryIndex returns the navigation cursor, or -1 when not browsing.
func (s *Session) HistoryIndex() int { return s.historyIndex }

// Pending returns the input recalled by history navigation.
func (s *Session) Pending() string { return s.pending }

// Transcript returns the records currently on display.
func (s *Session) Transcript() []Record { return slices.Clone(s.transcript) }

// Complete returns the registered command names starting with prefix.
func (s *Session) Complete(prefix string) []string {
	var out []string
	for _, name := range s.registry.Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
