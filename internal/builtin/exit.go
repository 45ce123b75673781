// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

const exitText = "Goodbye! Terminal session ended."

// exitCommand only prints a farewell; there is no process to end.
type exitCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newExitCommand())
}

func newExitCommand() *exitCommand {
	return &exitCommand{baseCommand{name: "exit", description: "Exit terminal"}}
}

// Run executes the exit command.
func (c *exitCommand) Run(context.Context, []string) Outcome {
	return Text(exitText)
}
