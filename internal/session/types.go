// SPDX-License-Identifier: MPL-2.0

package session

import (
	"errors"
	"fmt"
)

const (
	// RecordInput is an echoed prompt line.
	RecordInput RecordKind = iota + 1
	// RecordOutput is command output.
	RecordOutput
)

// ErrInvalidHome is the sentinel error wrapped by InvalidHomeError.
var ErrInvalidHome = errors.New("invalid home directory")

type (
	// RecordKind tags a transcript record.
	RecordKind int

	// Record is one displayed line group of the transcript.
	Record struct {
		Kind    RecordKind
		Content string
	}

	// Result describes what a submission added to the display.
	Result struct {
		// Records are the records appended by this submission.
		Records []Record
		// Cleared reports that all previously displayed output was discarded.
		Cleared bool
	}

	// InvalidHomeError is returned when the home directory does not name a
	// directory of the session's filesystem. It wraps ErrInvalidHome.
	InvalidHomeError struct {
		Path string
	}
)

// String returns the kind name.
func (k RecordKind) String() string {
	switch k {
	case RecordInput:
		return "input"
	case RecordOutput:
		return "output"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error implements the error interface for InvalidHomeError.
func (e *InvalidHomeError) Error() string {
	return fmt.Sprintf("invalid home directory %q: not a directory of the filesystem", e.Path)
}

// Unwrap returns ErrInvalidHome for errors.Is() compatibility.
func (e *InvalidHomeError) Unwrap() error { return ErrInvalidHome }
