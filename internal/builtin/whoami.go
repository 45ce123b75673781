// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

type whoamiCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newWhoamiCommand())
}

func newWhoamiCommand() *whoamiCommand {
	return &whoamiCommand{baseCommand{name: "whoami", description: "Display current user"}}
}

// Run executes the whoami command.
func (c *whoamiCommand) Run(ctx context.Context, _ []string) Outcome {
	return Text(GetHandlerContext(ctx).User)
}
