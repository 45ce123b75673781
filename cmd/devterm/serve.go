// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devifyx/devterm/internal/config"
	"github.com/devifyx/devterm/internal/issue"
	"github.com/devifyx/devterm/internal/session"
	"github.com/devifyx/devterm/internal/sshserver"
)

// serveOptions holds the flags of `devterm serve`.
type serveOptions struct {
	host        string
	port        int
	metricsAddr string
}

func newServeCommand(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a terminal to each SSH connection",
		Long: `Serve a terminal to each SSH connection.

Every connection gets its own session on a fresh filesystem. Connections
need a PTY (ssh -t). No authentication is performed, so the server binds
to 127.0.0.1 unless told otherwise.`,
		Example: `  devterm serve
  devterm serve --port 2323 --metrics-addr 127.0.0.1:9090
  ssh -t -p 2222 localhost`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, opts)
		},
	}

	serveCmd.Flags().StringVar(&opts.host, "host", "", "address to bind (overrides ssh.host)")
	serveCmd.Flags().IntVar(&opts.port, "port", 0, "port to listen on (overrides ssh.port)")
	serveCmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this host:port (overrides ssh.metrics_addr)")

	return serveCmd
}

func runServe(cmd *cobra.Command, root *rootOptions, opts *serveOptions) error {
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

	srvCfg := serverConfig(cfg)
	if cmd.Flags().Changed("host") {
		srvCfg.Host = opts.host
	}
	if cmd.Flags().Changed("port") {
		srvCfg.Port = opts.port
	}
	if cmd.Flags().Changed("metrics-addr") {
		srvCfg.MetricsAddr = opts.metricsAddr
	}

	if err := os.MkdirAll(filepath.Dir(srvCfg.HostKeyPath), 0o700); err != nil {
		return hostKeyError(srvCfg.HostKeyPath, err)
	}

	factory := func(extra ...session.Option) (*session.Session, error) {
		return newSession(cfg, logger, extra...)
	}
	srv, err := sshserver.New(srvCfg, factory,
		sshserver.WithLogger(logger),
		sshserver.WithViewOptions(viewOptions(cfg)),
	)
	if err != nil {
		return startError(srvCfg, err)
	}

	if err := srv.Start(ctx); err != nil {
		return startError(srvCfg, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Listening on"), CmdStyle.Render(srv.Address()))

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-srv.Err():
		_ = srv.Stop()
		return fmt.Errorf("ssh server: %w", err)
	}
	return srv.Stop()
}

// serverConfig maps the ssh configuration onto the server.
func serverConfig(cfg *config.Config) sshserver.Config {
	srvCfg := sshserver.DefaultConfig()
	srvCfg.Host = cfg.SSH.Host
	srvCfg.Port = cfg.SSH.Port
	srvCfg.HostKeyPath = cfg.SSH.HostKeyPath
	srvCfg.MetricsAddr = cfg.SSH.MetricsAddr
	return srvCfg
}

func startError(srvCfg sshserver.Config, err error) error {
	switch {
	case errors.Is(err, sshserver.ErrHostKey):
		return hostKeyError(srvCfg.HostKeyPath, err)
	case errors.Is(err, sshserver.ErrMetricsListen):
		return issue.NewErrorContext().
			WithOperation("start metrics endpoint").
			WithResource(srvCfg.MetricsAddr).
			WithSuggestion("Choose a free address with --metrics-addr").
			WithIssue(issue.MetricsServerFailedId).
			Wrap(err).
			BuildError()
	default:
		return issue.NewErrorContext().
			WithOperation("start SSH server").
			WithResource(fmt.Sprintf("%s:%d", srvCfg.Host, srvCfg.Port)).
			WithSuggestion("Choose another port with --port").
			WithIssue(issue.SSHServerStartFailedId).
			Wrap(err).
			BuildError()
	}
}

func hostKeyError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("prepare SSH host key").
		WithResource(path).
		WithSuggestion("Set 'ssh.host_key_path' to a writable location").
		WithIssue(issue.HostKeyUnavailableId).
		Wrap(err).
		BuildError()
}
