// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/devifyx/devterm/cmd/devterm"

func main() {
	cmd.Execute()
}
