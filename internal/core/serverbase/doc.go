// SPDX-License-Identifier: MPL-2.0

// Package serverbase is the lifecycle state machine shared by devterm's
// long-running servers: atomic state reads, one-shot start, idempotent stop
// and tracking of background goroutines.
package serverbase
