// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"

	"github.com/devifyx/devterm/internal/vfs"
)

// cdCommand changes the session's working directory.
type cdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCdCommand())
}

func newCdCommand() *cdCommand {
	return &cdCommand{baseCommand{name: "cd", synopsis: "cd <path>", description: "Change directory"}}
}

// Run executes the cd command. The working directory is only changed once
// the target is known to be an existing directory.
// Usage: cd [PATH]
func (c *cdCommand) Run(ctx context.Context, args []string) Outcome {
	hc := GetHandlerContext(ctx)

	if len(args) == 0 {
		hc.chdir(hc.Home)
		return Text("")
	}

	target := args[0]
	node, ok := hc.Lookup(target)
	if !ok {
		return Textf("cd: %s: No such file or directory", target)
	}
	if node.Kind() != vfs.KindDirectory {
		return Textf("cd: %s: Not a directory", target)
	}

	hc.chdir(hc.Resolve(target))
	return Text("")
}
