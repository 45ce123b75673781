// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"

	"github.com/devifyx/devterm/internal/vfs"
)

// catCommand prints the content of a single file.
type catCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCatCommand())
}

func newCatCommand() *catCommand {
	return &catCommand{baseCommand{name: "cat", synopsis: "cat <file>", description: "Display file contents"}}
}

// Run executes the cat command.
// Usage: cat FILE
func (c *catCommand) Run(ctx context.Context, args []string) Outcome {
	hc := GetHandlerContext(ctx)

	if len(args) == 0 {
		return Text("cat: missing file operand")
	}

	target := args[0]
	node, ok := hc.Lookup(target)
	if !ok {
		return Textf("cat: %s: No such file or directory", target)
	}

	file, ok := node.(*vfs.File)
	if !ok {
		return Textf("cat: %s: Is a directory", target)
	}
	return Text(file.Content())
}
