// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for devterm.
//
// The root command opens the interactive terminal view on a fresh session.
// Subcommands run sessions in line mode (run), serve them over SSH (serve),
// list the builtins (commands) and inspect the configuration (config).
package cmd
