// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/devifyx/devterm/pkg/vpath"
)

const (
	// ColorSchemeAuto follows the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug logs every dispatched command.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs lifecycle events.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs recoverable problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs failures only.
	LogLevelError LogLevel = "error"

	// DefaultTypingDelay is the default delay between revealed characters.
	DefaultTypingDelay = 30 * time.Millisecond
	// DefaultSSHPort is the default port of `devterm serve`.
	DefaultSSHPort = 2222
	// HostKeyFileName is the host key file created in the config directory.
	HostKeyFileName = "ssh_host_ed25519"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidIdentity is returned for an empty or whitespace-containing user or host name.
	ErrInvalidIdentity = errors.New("invalid identity")
	// ErrInvalidHomePath is returned when the session home is not an absolute path.
	ErrInvalidHomePath = errors.New("invalid home path")
	// ErrInvalidTypingDelay is returned for a negative typing delay.
	ErrInvalidTypingDelay = errors.New("invalid typing delay")
	// ErrInvalidPort is returned for a port outside 1-65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the palette preference of the terminal view.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written to the log.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidFieldError reports a single invalid field value.
	InvalidFieldError struct {
		Field string
		Value any
		Err   error
	}

	// InvalidConfigError collects field-level validation errors of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Session is the identity of new terminal sessions.
		Session SessionConfig `json:"session" mapstructure:"session"`
		// UI configures the terminal view.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// SSH configures `devterm serve`.
		SSH SSHConfig `json:"ssh" mapstructure:"ssh"`
		// Log configures logging.
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// SessionConfig is read once when a session is created.
	SessionConfig struct {
		Username string `json:"username" mapstructure:"username"`
		Hostname string `json:"hostname" mapstructure:"hostname"`
		// Home must name a directory of the seeded filesystem.
		Home string `json:"home" mapstructure:"home"`
	}

	// UIConfig configures the terminal view.
	UIConfig struct {
		// TypingDelay is the delay between revealed characters; 0 disables the reveal.
		TypingDelay time.Duration `json:"typing_delay" mapstructure:"typing_delay"`
		// Welcome shows the banner while the transcript is empty.
		Welcome bool `json:"welcome" mapstructure:"welcome"`
		// ColorScheme selects the palette.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// SSHConfig configures `devterm serve`.
	SSHConfig struct {
		Host string `json:"host" mapstructure:"host"`
		Port int    `json:"port" mapstructure:"port"`
		// HostKeyPath defaults to ssh_host_ed25519 in the config directory.
		HostKeyPath string `json:"host_key_path" mapstructure:"host_key_path"`
		// MetricsAddr enables the Prometheus endpoint when set.
		MetricsAddr string `json:"metrics_addr" mapstructure:"metrics_addr"`
	}

	// LogConfig configures logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
		// File receives the log when set; the interactive view logs nowhere else.
		File string `json:"file" mapstructure:"file"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Username: "user",
			Hostname: "devifyx",
			Home:     "/home/user",
		},
		UI: UIConfig{
			TypingDelay: DefaultTypingDelay,
			Welcome:     true,
			ColorScheme: ColorSchemeAuto,
		},
		SSH: SSHConfig{
			Host: "127.0.0.1",
			Port: DefaultSSHPort,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	check := func(field string, value any, err error) {
		errs = append(errs, &InvalidFieldError{Field: field, Value: value, Err: err})
	}

	if !validIdentity(c.Session.Username) {
		check("session.username", c.Session.Username, ErrInvalidIdentity)
	}
	if !validIdentity(c.Session.Hostname) {
		check("session.hostname", c.Session.Hostname, ErrInvalidIdentity)
	}
	if !vpath.IsAbs(c.Session.Home) {
		check("session.home", c.Session.Home, ErrInvalidHomePath)
	}
	if c.UI.TypingDelay < 0 {
		check("ui.typing_delay", c.UI.TypingDelay, ErrInvalidTypingDelay)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.SSH.Port < 1 || c.SSH.Port > 65535 {
		check("ssh.port", c.SSH.Port, ErrInvalidPort)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

func validIdentity(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}

// Error implements the error interface for InvalidFieldError.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the field's sentinel error.
func (e *InvalidFieldError) Unwrap() error { return e.Err }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Level converts l to a charmbracelet/log level. Unknown values map to info.
func (l LogLevel) Level() log.Level {
	lvl, err := log.ParseLevel(string(l))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }
