// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures of the devterm CLI into messages a user can act on:
// ActionableError carries the failed operation, the resource and fix suggestions,
// and the issue catalog holds Markdown help pages rendered with glamour.
package issue
