// SPDX-License-Identifier: MPL-2.0

package builtin

import "context"

const (
	topTimeLayout = "3:04:05 PM"

	topBody = `Tasks: 195 total, 1 running, 194 sleeping, 0 stopped, 0 zombie
%Cpu(s): 2.1 us, 0.8 sy, 0.0 ni, 97.0 id, 0.1 wa, 0.0 hi, 0.0 si, 0.0 st

  PID USER          PR  NI    VIRT    RES    SHR S  %CPU %MEM     TIME+ COMMAND
  1234 user          20   0  123456   7890   2345 S   1.0  0.4   0:01.23 terminal
  5678 user          20   0   98765   4321   1234 S   0.5  0.2   0:00.45 bash`
)

type topCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newTopCommand())
}

func newTopCommand() *topCommand {
	return &topCommand{baseCommand{name: "top", description: "Display system processes"}}
}

// Run prints a single snapshot stamped with the current time.
func (c *topCommand) Run(ctx context.Context, _ []string) Outcome {
	now := GetHandlerContext(ctx).now()
	return Textf("top - %s up 1 day, 2:34, 1 user, load average: 0.15, 0.10, 0.05\n%s",
		now.Format(topTimeLayout), topBody)
}
