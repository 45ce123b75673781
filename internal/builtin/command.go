// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
)

const (
	// OutcomeText carries text to display. Empty text still produces an output line.
	OutcomeText OutcomeKind = iota + 1
	// OutcomeSuppressed shows nothing and tells the caller to discard all
	// previously displayed output.
	OutcomeSuppressed
)

type (
	// Command defines the interface for builtin implementations.
	Command interface {
		// Name returns the command name (e.g., "ls", "cat").
		Name() string

		// Synopsis returns the usage form shown by help (e.g., "cd <path>").
		Synopsis() string

		// Description returns a one-line summary of what the command does.
		Description() string

		// Run executes the command. args excludes the command name.
		// Session state is read from the HandlerContext in ctx.
		Run(ctx context.Context, args []string) Outcome
	}

	// OutcomeKind tags the variant of an Outcome.
	OutcomeKind int

	// Outcome is the result of running a command.
	Outcome struct {
		Kind OutcomeKind
		Text string
	}
)

// String returns the kind name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeText:
		return "text"
	case OutcomeSuppressed:
		return "suppressed"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Text returns an outcome displaying s.
func Text(s string) Outcome {
	return Outcome{Kind: OutcomeText, Text: s}
}

// Textf returns an outcome displaying the formatted text.
func Textf(format string, args ...any) Outcome {
	return Text(fmt.Sprintf(format, args...))
}

// Suppressed returns an outcome that displays nothing.
func Suppressed() Outcome {
	return Outcome{Kind: OutcomeSuppressed}
}

// IsSuppressed reports whether the outcome displays nothing.
func (o Outcome) IsSuppressed() bool {
	return o.Kind == OutcomeSuppressed
}
