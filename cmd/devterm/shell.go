// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/devifyx/devterm/internal/issue"
	"github.com/devifyx/devterm/internal/tui"
)

// exitCodeUsage is returned when devterm is started in a context it cannot serve.
const exitCodeUsage = 2

// ErrNotATerminal is returned when the interactive view is requested without a terminal.
var ErrNotATerminal = errors.New("standard input is not a terminal")

func runInteractive(cmd *cobra.Command, opts *rootOptions) error {
	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return &ExitError{
			Code: exitCodeUsage,
			Err: issue.NewErrorContext().
				WithOperation("open the terminal view").
				WithSuggestion("Pipe commands into 'devterm run' instead").
				WithIssue(issue.NotATerminalId).
				Wrap(ErrNotATerminal).
				BuildError(),
		}
	}

	ctx := cmd.Context()
	cfg, err := opts.loadConfig(ctx)
	if err != nil {
		return err
	}

	// The screen belongs to the view; logs only go to log.file.
	logger, closeLog, err := opts.newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	sess, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("terminal view started", "user", sess.Username(), "host", sess.Hostname())
	defer logger.Info("terminal view stopped", "commands", sess.HistoryLen())

	return tui.Run(ctx, sess, viewOptions(cfg), tea.WithInput(in), tea.WithOutput(cmd.OutOrStdout()))
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isTerminalWriter reports whether w is a file attached to a terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
