// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/devifyx/devterm/internal/builtin"
)

func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands available inside the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rendered, err := glamour.Render(commandsMarkdown(builtin.DefaultRegistry), glamourStyle(out))
			if err != nil {
				return fmt.Errorf("render commands: %w", err)
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
}

// commandsMarkdown renders the commands of r as a markdown table.
func commandsMarkdown(r *builtin.Registry) string {
	var sb strings.Builder
	sb.WriteString("# Available commands\n\n")
	sb.WriteString("| Command | Usage | Description |\n")
	sb.WriteString("|---|---|---|\n")
	for _, c := range r.Commands() {
		fmt.Fprintf(&sb, "| %s | `%s` | %s |\n", c.Name(), c.Synopsis(), c.Description())
	}
	return sb.String()
}

// glamourStyle picks the dark style on terminals and plain text elsewhere.
func glamourStyle(w io.Writer) string {
	if isTerminalWriter(w) {
		return "dark"
	}
	return "notty"
}
