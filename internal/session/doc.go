// SPDX-License-Identifier: MPL-2.0

// Package session implements the line-oriented interpreter of the virtual shell.
//
// A Session owns the working directory, the command history with its
// navigation cursor, and the transcript of displayed output. Submit tokenizes
// a raw line on whitespace, dispatches it to a builtin.Registry, and returns
// the output records the view should render.
//
// A Session is driven by a single caller: it is not safe for concurrent use.
// The view collaborator must not submit a new line while the previous
// output is still being revealed.
package session
