// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"strings"
)

type echoCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newEchoCommand())
}

func newEchoCommand() *echoCommand {
	return &echoCommand{baseCommand{name: "echo", synopsis: "echo <text>", description: "Display text"}}
}

// Run joins its arguments with single spaces.
func (c *echoCommand) Run(_ context.Context, args []string) Outcome {
	return Text(strings.Join(args, " "))
}
