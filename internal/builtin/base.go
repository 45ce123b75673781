// SPDX-License-Identifier: MPL-2.0

package builtin

// baseCommand provides the descriptive half of Command.
type baseCommand struct {
	name        string
	synopsis    string
	description string
}

// Name returns the command name.
func (c *baseCommand) Name() string { return c.name }

// Synopsis returns the usage form.
func (c *baseCommand) Synopsis() string {
	if c.synopsis == "" {
		return c.name
	}
	return c.synopsis
}

// Description returns the one-line summary.
func (c *baseCommand) Description() string { return c.description }
