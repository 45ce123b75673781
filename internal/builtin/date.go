// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"time"
)

// dateLayout renders like "Thu Oct 15 2026 10:00:00 GMT+0000"; the zone
// abbreviation is appended in parentheses.
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

type dateCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newDateCommand())
}

func newDateCommand() *dateCommand {
	return &dateCommand{baseCommand{name: "date", description: "Show current date and time"}}
}

// Run executes the date command.
func (c *dateCommand) Run(ctx context.Context, _ []string) Outcome {
	return Text(formatDate(GetHandlerContext(ctx).now()))
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout) + " (" + t.Format("MST") + ")"
}
