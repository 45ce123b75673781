// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

// clearCommand asks the caller to discard displayed output.
// Command history is not affected.
type clearCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newClearCommand())
}

func newClearCommand() *clearCommand {
	return &clearCommand{baseCommand{name: "clear", description: "Clear terminal"}}
}

// Run executes the clear command.
func (c *clearCommand) Run(context.Context, []string) Outcome {
	return Suppressed()
}
