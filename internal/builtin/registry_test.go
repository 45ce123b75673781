// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"context"
	"slices"
	"strings"
	"testing"
)

// mockCommand is a test implementation of Command.
type mockCommand struct {
	baseCommand
	runFn  func(ctx context.Context, args []string) Outcome
	called bool
	args   []string
}

func newMockCommand(name string) *mockCommand {
	return &mockCommand{baseCommand: baseCommand{name: name}}
}

func (m *mockCommand) Run(ctx context.Context, args []string) Outcome {
	m.called = true
	m.args = args
	if m.runFn != nil {
		return m.runFn(ctx, args)
	}
	return Text("")
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.Names()) != 0 {
		t.Errorf("NewRegistry should create empty registry, got %d commands", len(r.Names()))
	}
}

func TestRegistry_Register_PanicOnDuplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(newMockCommand("test"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()

	r.Register(newMockCommand("test"))
}

func TestRegistry_Register_PanicOnEmptyName(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty name registration")
		}
	}()

	r.Register(newMockCommand(""))
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	cmd := newMockCommand("test")
	r.Register(cmd)

	found, ok := r.Lookup("test")
	if !ok {
		t.Error("Lookup should find registered command")
	}
	if found != cmd {
		t.Error("Lookup returned wrong command")
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup should not find unregistered command")
	}
}

func TestRegistry_NamesAndCommandsSorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(newMockCommand("ls"))
	r.Register(newMockCommand("cat"))
	r.Register(newMockCommand("pwd"))

	want := []string{"cat", "ls", "pwd"}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	cmds := r.Commands()
	for i, c := range cmds {
		if c.Name() != want[i] {
			t.Errorf("Commands()[%d] = %q, want %q", i, c.Name(), want[i])
		}
	}
}

func TestRegistry_Run(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	cmd := newMockCommand("test")
	cmd.runFn = func(_ context.Context, args []string) Outcome {
		return Text(strings.Join(args, ","))
	}
	r.Register(cmd)

	got := r.Run(context.Background(), "test", []string{"a", "b"})
	if !cmd.called {
		t.Fatal("command was not called")
	}
	if !slices.Equal(cmd.args, []string{"a", "b"}) {
		t.Errorf("args = %v, want [a b]", cmd.args)
	}
	if got != Text("a,b") {
		t.Errorf("Run() = %+v, want text %q", got, "a,b")
	}
}

func TestRegistry_Run_NotFound(t *testing.T) {
	t.Parallel()

	got := NewRegistry().Run(context.Background(), "foobar", nil)
	if got.Kind != OutcomeText || got.Text != "foobar: command not found" {
		t.Errorf("Run() = %+v, want text %q", got, "foobar: command not found")
	}
}

func TestDefaultRegistry_HasEveryBuiltin(t *testing.T) {
	t.Parallel()

	want := []string{
		"cat", "cd", "clear", "date", "echo", "exit", "help", "history",
		"ls", "mkdir", "ps", "pwd", "rm", "top", "touch", "uname", "whoami",
	}
	if got := DefaultRegistry.Names(); !slices.Equal(got, want) {
		t.Errorf("DefaultRegistry.Names() = %v, want %v", got, want)
	}
}

func TestHelp_MentionsEveryBuiltin(t *testing.T) {
	t.Parallel()

	out := DefaultRegistry.Run(context.Background(), "help", nil)
	for _, cmd := range DefaultRegistry.Commands() {
		if !strings.Contains(out.Text, "  "+cmd.Synopsis()+" ") {
			t.Errorf("help text does not mention %q", cmd.Synopsis())
		}
		if !strings.Contains(out.Text, "- "+cmd.Description()) {
			t.Errorf("help text does not describe %q as %q", cmd.Name(), cmd.Description())
		}
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	if Suppressed().Kind != OutcomeSuppressed || !Suppressed().IsSuppressed() {
		t.Error("Suppressed() should be suppressed")
	}
	if Text("").IsSuppressed() {
		t.Error("empty Text should not be suppressed")
	}
	if got := Textf("%s-%d", "a", 1); got.Text != "a-1" {
		t.Errorf("Textf() = %q, want %q", got.Text, "a-1")
	}
	if OutcomeText.String() != "text" || OutcomeSuppressed.String() != "suppressed" {
		t.Error("unexpected outcome kind names")
	}
	if got := OutcomeKind(9).String(); got != "unknown(9)" {
		t.Errorf("String() = %q, want %q", got, "unknown(9)")
	}
}
