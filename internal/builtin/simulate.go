// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

// simulatedCommand reports a filesystem mutation without performing it.
// The tree stays read-only, so a later ls or cat does not see the change.
type simulatedCommand struct {
	baseCommand
	// missing is the diagnostic printed without an operand.
	missing string
	// done formats the confirmation for the operand.
	done string
}

func init() {
	RegisterDefault(newMkdirCommand())
	RegisterDefault(newTouchCommand())
	RegisterDefault(newRmCommand())
}

func newMkdirCommand() *simulatedCommand {
	return &simulatedCommand{
		baseCommand: baseCommand{name: "mkdir", synopsis: "mkdir <name>", description: "Create directory (simulation)"},
		missing:     "mkdir: missing operand",
		done:        "mkdir: created directory '%s'",
	}
}

func newTouchCommand() *simulatedCommand {
	return &simulatedCommand{
		baseCommand: baseCommand{name: "touch", synopsis: "touch <name>", description: "Create file (simulation)"},
		missing:     "touch: missing file operand",
		done:        "touch: created file '%s'",
	}
}

func newRmCommand() *simulatedCommand {
	return &simulatedCommand{
		baseCommand: baseCommand{name: "rm", synopsis: "rm <name>", description: "Remove file/directory (simulation)"},
		missing:     "rm: missing operand",
		done:        "rm: removed '%s'",
	}
}

// Run reports the mutation for the first operand.
func (c *simulatedCommand) Run(_ context.Context, args []string) Outcome {
	if len(args) == 0 {
		return Text(c.missing)
	}
	return Textf(c.done, args[0])
}
