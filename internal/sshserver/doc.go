// SPDX-License-Identifier: MPL-2.0

// Package sshserver serves the terminal view over SSH with Wish. Every
// connection gets its own session on a freshly seeded filesystem, so nothing
// typed in one connection is visible in another. Connections without a PTY
// are turned away.
package sshserver
