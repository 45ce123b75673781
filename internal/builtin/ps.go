// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

const psText = `   PID TTY           TIME CMD
  1234 pts/0     00:00:01 bash
  5678 pts/0     00:00:00 ps`

type psCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newPsCommand())
}

func newPsCommand() *psCommand {
	return &psCommand{baseCommand{name: "ps", description: "List running processes"}}
}

// Run executes the ps command.
func (c *psCommand) Run(context.Context, []string) Outcome {
	return Text(psText)
}
