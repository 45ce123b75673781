// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog page.
type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	SSHServerStartFailedId
	HostKeyUnavailableId
	MetricsServerFailedId
	NotATerminalId
)

// MarkdownMsg is the Markdown body of a catalog page.
type MarkdownMsg string

// Issue is one page of guidance shown when a known failure happens.
type Issue struct {
	id    Id
	title string
	mdMsg MarkdownMsg
}

// Id returns the page id.
func (i *Issue) Id() Id { return i.id }

// Title returns a one-line summary of the page.
func (i *Issue) Title() string { return i.title }

// MarkdownMsg returns the raw Markdown.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the page for a terminal with the given glamour style
// ("dark", "light", "notty", "auto" or a JSON style path).
func (i *Issue) Render(style string) (string, error) {
	return render(string(i.mdMsg), style)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id:    ConfigLoadFailedId,
		title: "configuration could not be loaded",
		mdMsg: `
# Your configuration could not be loaded

devterm reads an optional CUE file and validates it against its schema.

## Things you can try
- Print the file devterm looks for:
~~~
$ devterm config path
~~~
- Print a valid file with the current values and compare:
~~~
$ devterm config dump
~~~
- Durations are strings such as ` + "`\"30ms\"`" + `, ports are integers
- Point to another file with ` + "`--config`",
	}

	sshServerStartFailedIssue = &Issue{
		id:    SSHServerStartFailedId,
		title: "SSH server failed to start",
		mdMsg: `
# The SSH server failed to start

## Things you can try
- Check that nothing else listens on the configured port
- Ports below 1024 usually need elevated privileges
- Choose another address:
~~~
$ devterm serve --host 127.0.0.1 --port 2323
~~~`,
	}

	hostKeyUnavailableIssue = &Issue{
		id:    HostKeyUnavailableId,
		title: "SSH host key unavailable",
		mdMsg: `
# The SSH host key is unavailable

devterm creates an ed25519 host key on first start when the file does not exist.

## Things you can try
- Make sure the directory of ` + "`ssh.host_key_path`" + ` is writable
- Delete a corrupted key file so a new one is generated`,
	}

	metricsServerFailedIssue = &Issue{
		id:    MetricsServerFailedId,
		title: "metrics endpoint failed",
		mdMsg: `
# The metrics endpoint failed

## Things you can try
- Check that ` + "`ssh.metrics_addr`" + ` is a free host:port
- Leave ` + "`ssh.metrics_addr`" + ` empty to disable metrics`,
	}

	notATerminalIssue = &Issue{
		id:    NotATerminalId,
		title: "standard input is not a terminal",
		mdMsg: `
# Standard input is not a terminal

The interactive view needs a terminal.

## Things you can try
- Pipe commands into line mode instead:
~~~
$ echo "ls" | devterm run
~~~
- Or pass them as arguments:
~~~
$ devterm run -c "cd documents" -c pwd
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		sshServerStartFailedIssue.Id(): sshServerStartFailedIssue,
		hostKeyUnavailableIssue.Id():   hostKeyUnavailableIssue,
		metricsServerFailedIssue.Id():  metricsServerFailedIssue,
		notATerminalIssue.Id():         notATerminalIssue,
	}
)

// Values returns every catalog page ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the page for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
