// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"strings"
)

type historyCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newHistoryCommand())
}

func newHistoryCommand() *historyCommand {
	return &historyCommand{baseCommand{name: "history", description: "Show command history"}}
}

// Run lists the history 1-indexed, oldest first.
func (c *historyCommand) Run(ctx context.Context, _ []string) Outcome {
	entries := GetHandlerContext(ctx).history()
	lines := make([]string, len(entries))
	for i, line := range entries {
		lines[i] = fmt.Sprintf("%d   %s", i+1, line)
	}
	return Text(strings.Join(lines, "\n"))
}
