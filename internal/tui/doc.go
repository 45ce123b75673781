// SPDX-License-Identifier: MPL-2.0

// Package tui renders a terminal session as a bubbletea program: a header,
// the scrolling transcript, the prompt line with a blinking cursor and a
// status bar. Output is revealed one character at a time while keys are
// ignored; Ctrl+C leaves the program.
package tui
