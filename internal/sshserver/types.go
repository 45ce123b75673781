// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/session"
	"github.com/devifyx/devterm/internal/tui"
)

var (
	// ErrInvalidSSHConfig is the sentinel error wrapped by InvalidSSHConfigError.
	ErrInvalidSSHConfig = errors.New("invalid SSH server config")
	// ErrNoSessionFactory is returned by New when no SessionFactory is given.
	ErrNoSessionFactory = errors.New("no session factory")
	// ErrHostKey is wrapped by Start when the host key cannot be loaded or created.
	ErrHostKey = errors.New("host key unavailable")
	// ErrMetricsListen is wrapped by Start when the metrics endpoint cannot listen.
	ErrMetricsListen = errors.New("metrics endpoint unavailable")
)

type (
	// SessionFactory creates the session of one connection. The server passes
	// its own options (logger, metrics observer) which must be applied.
	SessionFactory func(opts ...session.Option) (*session.Session, error)

	// Config holds immutable configuration for the SSH server.
	Config struct {
		// Host is the address to bind to (default: 127.0.0.1).
		Host string
		// Port is the port to listen on (0 = auto-select).
		Port int
		// HostKeyPath is the ed25519 host key, created when missing.
		HostKeyPath string
		// MetricsAddr serves Prometheus metrics on /metrics when set.
		MetricsAddr string
		// StartupTimeout bounds Start (default: 5s).
		StartupTimeout time.Duration
		// ShutdownTimeout bounds the graceful part of Stop (default: 10s).
		ShutdownTimeout time.Duration
	}

	// Option configures a Server.
	Option func(*Server)

	// InvalidSSHConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidSSHConfig for errors.Is() compatibility.
	InvalidSSHConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            2222,
		StartupTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate returns nil when cfg can be served.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Host) == "" {
		errs = append(errs, fmt.Errorf("host %q: must be non-empty", c.Host))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d: must be within 0-65535", c.Port))
	}
	if strings.TrimSpace(c.HostKeyPath) == "" {
		errs = append(errs, errors.New("host key path: must be non-empty"))
	}
	if len(errs) > 0 {
		return &InvalidSSHConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidSSHConfigError.
func (e *InvalidSSHConfigError) Error() string {
	return fmt.Sprintf("invalid SSH server config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidSSHConfig for errors.Is() compatibility.
func (e *InvalidSSHConfigError) Unwrap() error { return ErrInvalidSSHConfig }

// WithLogger sets the server logger. Its prefix is replaced with "ssh-server".
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithViewOptions sets the terminal view options used for every connection.
func WithViewOptions(opts tui.Options) Option {
	return func(s *Server) { s.view = opts }
}

// WithClock sets the clock measuring session durations.
func WithClock(c clock.Clock) Option {
	return func(s *Server) { s.clock = c }
}
