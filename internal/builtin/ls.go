// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/devifyx/devterm/internal/vfs"
)

const (
	dirPermissions  = "rwxr-xr-x"
	filePermissions = "rw-r--r--"
	// lsDateLayout matches a month/day/year short date.
	lsDateLayout = "1/2/2006"
)

// lsCommand lists a directory in long format.
type lsCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newLsCommand())
}

func newLsCommand() *lsCommand {
	return &lsCommand{baseCommand{name: "ls", description: "List directory contents"}}
}

// Run executes the ls command.
// Usage: ls [PATH]
func (c *lsCommand) Run(ctx context.Context, args []string) Outcome {
	hc := GetHandlerContext(ctx)

	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	node, ok := hc.Lookup(target)
	if !ok {
		return Textf("ls: cannot access '%s': No such file or directory", target)
	}

	dir, ok := node.(*vfs.Directory)
	if !ok {
		// Listing a file echoes the operand, like ls does without -l.
		return Text(target)
	}

	date := hc.now().Format(lsDateLayout)
	lines := make([]string, 0, dir.Len())
	for _, e := range dir.Entries() {
		lines = append(lines, formatLong(e, hc.User, date))
	}
	return Text(strings.Join(lines, "\n"))
}

// formatLong renders one entry as a long-format line.
func formatLong(e vfs.Entry, owner, date string) string {
	flag, perms := "-", filePermissions
	if e.Node.Kind() == vfs.KindDirectory {
		flag, perms = "d", dirPermissions
	}
	return fmt.Sprintf("%s%s 1 %s %s %8d %s %s", flag, perms, owner, owner, e.Node.Size(), date, e.Name)
}
