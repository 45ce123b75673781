// SPDX-License-Identifier: MPL-2.0

// Package config loads devterm settings using Viper with CUE as the file format.
//
// The file lives at $XDG_CONFIG_HOME/devterm/config.cue on Linux,
// ~/Library/Application Support/devterm/config.cue on macOS and
// %APPDATA%\devterm\config.cue on Windows. A missing file is not an error:
// every key has a default. The file is validated against the embedded
// config_schema.cue before it is merged, and DEVTERM_* environment variables
// override both (e.g. DEVTERM_SSH_PORT).
package config
