// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

type pwdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newPwdCommand())
}

func newPwdCommand() *pwdCommand {
	return &pwdCommand{baseCommand{name: "pwd", description: "Print working directory"}}
}

// Run executes the pwd command.
func (c *pwdCommand) Run(ctx context.Context, _ []string) Outcome {
	return Text(GetHandlerContext(ctx).Dir)
}
