// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/devifyx/devterm/internal/config"
	"github.com/devifyx/devterm/internal/issue"
	"github.com/devifyx/devterm/internal/session"
	"github.com/devifyx/devterm/internal/tui"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	cfgFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "devterm",
		Short: "A simulated Unix shell in your terminal",
		Long: TitleStyle.Render("devterm") + SubtitleStyle.Render(" - A simulated Unix shell in your terminal") + `

devterm opens a terminal-style view on a small in-memory filesystem.
Commands such as ls, cd and cat work on that filesystem only; nothing
on the host is read, written or executed.

` + SubtitleStyle.Render("Examples:") + `
  devterm                       Open the interactive terminal
  echo ls | devterm run         Run commands in line mode
  devterm run -c "cd documents" -c "cat notes.txt"
  devterm serve --port 2323     Serve a terminal to each SSH connection
  devterm commands              List the available commands
  devterm config show           Show the current configuration`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/devterm/config.cue)")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newCommandsCommand())
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	rootCmd := newRootCommand()
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		renderIssue(os.Stderr, err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// loadConfig loads the configuration named by --config, or the default file.
func (o *rootOptions) loadConfig(ctx context.Context) (*config.Config, error) {
	return config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: o.cfgFile})
}

// newLogger builds the process logger. It writes to log.file when set and to
// fallback otherwise. The returned close function is never nil.
func (o *rootOptions) newLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func() error, error) {
	level := cfg.Log.Level.Level()
	if o.verbose {
		level = log.DebugLevel
	}

	w := fallback
	closeFn := func() error { return nil }
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, issue.NewErrorContext().
				WithOperation("open log file").
				WithResource(cfg.Log.File).
				WithSuggestion("Check that the directory exists and is writable").
				WithSuggestion("Leave 'log.file' empty to disable the log file").
				Wrap(err).
				BuildError()
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// newSession creates a session with the configured identity. extra options
// are applied last.
func newSession(cfg *config.Config, logger *log.Logger, extra ...session.Option) (*session.Session, error) {
	opts := []session.Option{
		session.WithUsername(cfg.Session.Username),
		session.WithHostname(cfg.Session.Hostname),
		session.WithHome(cfg.Session.Home),
		session.WithLogger(logger.WithPrefix("session")),
	}
	opts = append(opts, extra...)

	sess, err := session.New(opts...)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("start session").
			WithResource("session.home = " + cfg.Session.Home).
			WithSuggestion("Set 'session.home' to a directory of the simulated filesystem, such as /home/user").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return sess, nil
}

// viewOptions maps the ui configuration onto the terminal view.
func viewOptions(cfg *config.Config) tui.Options {
	return tui.Options{
		TypingDelay: cfg.UI.TypingDelay,
		Welcome:     cfg.UI.Welcome,
		Scheme:      tui.Scheme(cfg.UI.ColorScheme),
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue writes the catalog page linked to err, if any.
func renderIssue(w io.Writer, err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.IssueID == 0 {
		return
	}
	page := issue.Get(ae.IssueID)
	if page == nil {
		return
	}
	rendered, renderErr := page.Render(glamourStyle(w))
	if renderErr != nil {
		return
	}
	fmt.Fprint(w, rendered)
}
