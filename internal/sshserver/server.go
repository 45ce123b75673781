// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/core/serverbase"
	"github.com/devifyx/devterm/internal/metrics"
	"github.com/devifyx/devterm/internal/session"
	"github.com/devifyx/devterm/internal/tui"
)

// Server serves one terminal session per SSH connection.
// A Server instance is single-use: once stopped or failed, create a new instance.
type Server struct {
	*serverbase.Base

	cfg        Config
	newSession SessionFactory
	view       tui.Options
	clock      clock.Clock
	logger     *log.Logger

	srvMu      sync.Mutex
	srv        *ssh.Server
	listener   net.Listener
	metricsSrv *http.Server
	addr       string
}

// New creates a server. It is not started; call Start.
func New(cfg Config, newSession SessionFactory, opts ...Option) (*Server, error) {
	defaults := DefaultConfig()
	if cfg.Host == "" {
		cfg.Host = defaults.Host
	}
	if cfg.StartupTimeout == 0 {
		cfg.StartupTimeout = defaults.StartupTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if newSession == nil {
		return nil, ErrNoSessionFactory
	}

	s := &Server{
		Base:       serverbase.NewBase(),
		cfg:        cfg,
		newSession: newSession,
		clock:      clock.Real{},
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("ssh-server")
	return s, nil
}

// Start listens and blocks until the server accepts connections, fails,
// or the startup timeout passes. After a nil return, watch Err for runtime errors.
func (s *Server) Start(ctx context.Context) error {
	if err := s.TransitionToStarting(ctx); err != nil {
		return err
	}

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.StartupTimeout)
	defer cancel()

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	var lc net.ListenConfig
	listener, err := lc.Listen(startupCtx, "tcp", addr)
	if err != nil {
		s.TransitionToFailed(fmt.Errorf("failed to listen on %s: %w", addr, err))
		return s.LastError()
	}

	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(s.cfg.HostKeyPath),
		wish.WithMiddleware(
			bm.Middleware(s.teaHandler),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(s.logger),
		),
	)
	if err != nil {
		_ = listener.Close()
		s.TransitionToFailed(fmt.Errorf("failed to create SSH server: %w: %w", ErrHostKey, err))
		return s.LastError()
	}

	s.srvMu.Lock()
	s.srv = srv
	s.listener = listener
	s.addr = listener.Addr().String()
	s.srvMu.Unlock()

	if s.cfg.MetricsAddr != "" {
		if err := s.startMetrics(startupCtx); err != nil {
			_ = listener.Close()
			s.TransitionToFailed(err)
			return err
		}
	}

	s.Go(s.serve)

	select {
	case <-s.StartedChannel():
		s.logger.Info("SSH server started", "address", s.Address())
		return nil
	case err := <-s.Err():
		s.TransitionToFailed(err)
		return err
	case <-startupCtx.Done():
		s.TransitionToFailed(fmt.Errorf("startup timeout: %w", startupCtx.Err()))
		return s.LastError()
	}
}

func (s *Server) startMetrics(ctx context.Context) error {
	var lc net.ListenConfig
	ml, err := lc.Listen(ctx, "tcp", s.cfg.MetricsAddr)
	if err != nil {
		return fmt.Errorf("failed to listen for metrics on %s: %w: %w", s.cfg.MetricsAddr, ErrMetricsListen, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	ms := &http.Server{Handler: mux, ReadHeaderTimeout: s.cfg.StartupTimeout}

	s.srvMu.Lock()
	s.metricsSrv = ms
	s.srvMu.Unlock()

	s.Go(func() {
		if err := ms.Serve(ml); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.SendError(fmt.Errorf("metrics serve error: %w", err))
		}
	})
	s.logger.Info("metrics endpoint started", "address", ml.Addr().String())
	return nil
}

func (s *Server) serve() {
	s.TransitionToRunning()

	s.srvMu.Lock()
	srv, listener := s.srv, s.listener
	s.srvMu.Unlock()

	if err := srv.Serve(listener); err != nil {
		if errors.Is(err, ssh.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
			return
		}
		s.SendError(fmt.Errorf("serve error: %w", err))
	}
}

// Stop closes the listener and waits for open connections up to the
// shutdown timeout. Safe to call multiple times.
func (s *Server) Stop() error {
	if !s.TransitionToStopping() {
		s.WaitForShutdown()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	s.srvMu.Lock()
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs = append(errs, fmt.Errorf("ssh shutdown: %w", err))
		}
	}
	if s.metricsSrv != nil {
		if err := s.metricsSrv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics shutdown: %w", err))
		}
	}
	s.srvMu.Unlock()

	s.WaitForShutdown()
	s.TransitionToStopped()
	s.logger.Info("SSH server stopped")

	return errors.Join(errs...)
}

// Wait blocks until the server stops and returns the failure cause, if any.
func (s *Server) Wait() error {
	ctx := s.Context()
	if ctx == nil {
		return s.LastError()
	}
	<-ctx.Done()
	s.WaitForShutdown()
	if s.State() == serverbase.StateFailed {
		return s.LastError()
	}
	return nil
}

// Address returns the bound host:port, or "" before a successful start.
func (s *Server) Address() string {
	select {
	case <-s.StartedChannel():
	default:
		return ""
	}
	s.srvMu.Lock()
	defer s.srvMu.Unlock()
	return s.addr
}

// Port returns the bound port, or 0 before a successful start.
func (s *Server) Port() int {
	_, portStr, err := net.SplitHostPort(s.Address())
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0
	}
	return port
}

// teaHandler builds the view of one connection.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	remote := sess.RemoteAddr().String()
	logger := s.logger.With("remote", remote, "user", sess.User())

	term, err := s.newSession(
		session.WithLogger(logger),
		session.WithObserver(metrics.RecordCommand),
	)
	if err != nil {
		logger.Error("create session", "error", err)
		wish.Errorln(sess, err)
		return nil, nil
	}

	ended := metrics.SessionStarted(s.clock.Now)
	go func() {
		<-sess.Context().Done()
		ended()
		logger.Debug("session closed")
	}()

	view := s.view
	view.Renderer = bm.MakeRenderer(sess)
	return tui.New(sess.Context(), term, view), []tea.ProgramOption{tea.WithAltScreen()}
}
