// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devifyx/devterm/internal/reveal"
	"github.com/devifyx/devterm/internal/session"
)

// runOptions holds the flags of `devterm run`.
type runOptions struct {
	commands []string
	noReveal bool
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run commands in line mode",
		Long: `Run commands in line mode.

Each line is submitted to a fresh session and the transcript is printed as
it grows. Lines are read from standard input unless -c is given. Output is
revealed character by character using ui.typing_delay; 'clear' prints
nothing.`,
		Example: `  echo ls | devterm run
  devterm run -c "cd documents" -c "cat notes.txt"
  devterm run --no-reveal < script.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, root, opts)
		},
	}

	runCmd.Flags().StringArrayVarP(&opts.commands, "command", "c", nil, "command line to submit (repeatable); standard input is read when absent")
	runCmd.Flags().BoolVar(&opts.noReveal, "no-reveal", false, "print output at once")

	return runCmd
}

func runLines(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	ctx := cmd.Context()
	cfg, err := root.loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, closeLog, err := root.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	sess, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	interval := cfg.UI.TypingDelay
	if opts.noReveal {
		interval = 0
	}
	out := newLineWriter(cmd.OutOrStdout(), interval)

	if len(opts.commands) > 0 {
		for _, line := range opts.commands {
			if err := out.submit(ctx, sess, line); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := out.submit(ctx, sess, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// lineWriter prints the records of each submission. Input lines are cyan
// and output is green when w is a terminal.
type lineWriter struct {
	w        io.Writer
	interval time.Duration
	input    *color.Color
	output   *color.Color
}

func newLineWriter(w io.Writer, interval time.Duration) *lineWriter {
	lw := &lineWriter{
		w:        w,
		interval: interval,
		input:    color.New(color.FgCyan),
		output:   color.New(color.FgGreen),
	}
	if !isTerminalWriter(w) {
		lw.input.DisableColor()
		lw.output.DisableColor()
	}
	return lw
}

// submit submits line and prints the records it adds. Empty output records
// print nothing.
func (lw *lineWriter) submit(ctx context.Context, sess *session.Session, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result := sess.Submit(ctx, line)
	for _, rec := range result.Records {
		switch rec.Kind {
		case session.RecordInput:
			if _, err := lw.input.Fprintln(lw.w, rec.Content); err != nil {
				return err
			}
		case session.RecordOutput:
			if rec.Content == "" {
				continue
			}
			lw.output.SetWriter(lw.w)
			err := reveal.Stream(ctx, lw.w, rec.Content, lw.interval, nil)
			lw.output.UnsetWriter(lw.w)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(lw.w); err != nil {
				return err
			}
		}
	}
	return nil
}
