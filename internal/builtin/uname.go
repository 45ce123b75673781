// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

const unameText = "Linux devifyx 5.15.0-generic x86_64 GNU/Linux"

type unameCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newUnameCommand())
}

func newUnameCommand() *unameCommand {
	return &unameCommand{baseCommand{name: "uname", description: "System information"}}
}

// Run executes the uname command.
func (c *unameCommand) Run(context.Context, []string) Outcome {
	return Text(unameText)
}
