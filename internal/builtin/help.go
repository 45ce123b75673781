// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

const helpText = `Available commands:
  help            - Show this help message
  ls              - List directory contents
  cd <path>     - Change directory
  pwd             - Print working directory
  cat <file>      - Display file contents
  mkdir <name>    - Create directory (simulation)
  touch <name>    - Create file (simulation)
  rm <name>       - Remove file/directory (simulation)
  clear           - Clear terminal
  whoami          - Display current user
  date            - Show current date and time
  echo <text>     - Display text
  uname           - System information
  ps              - List running processes
  top             - Display system processes
  history         - Show command history
  exit            - Exit terminal`

// helpCommand prints the static usage summary.
type helpCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newHelpCommand())
}

func newHelpCommand() *helpCommand {
	return &helpCommand{baseCommand{name: "help", description: "Show this help message"}}
}

// Run ignores its arguments.
func (c *helpCommand) Run(context.Context, []string) Outcome {
	return Text(helpText)
}
