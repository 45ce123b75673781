// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devifyx/devterm/internal/clock"
	"github.com/devifyx/devterm/internal/session"
)

func newTestModel(t *testing.T, opts Options) (*Model, *session.Session) {
	t.Helper()

	sess, err := session.New(session.WithClock(clock.NewFake(time.Time{})))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	opts.Renderer = lipgloss.NewRenderer(io.Discard)
	return New(context.Background(), sess, opts), sess
}

func typeLine(m *Model, line string) tea.Cmd {
	if line != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModel_WelcomeBanner(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{Welcome: true})
	view := m.View()
	for _, want := range []string{"DevifyX Terminal", "user@devifyx", "Welcome to DevifyX Terminal Emulator", "Ready", "Commands: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	quiet, _ := newTestModel(t, Options{})
	if strings.Contains(quiet.View(), "Welcome") {
		t.Error("banner shown with Welcome disabled")
	}
}

func TestModel_SubmitWithoutReveal(t *testing.T) {
	t.Parallel()

	m, sess := newTestModel(t, Options{Welcome: true})
	if cmd := typeLine(m, "pwd"); cmd != nil {
		t.Error("submit without typing delay should not schedule a reveal")
	}

	if got := len(sess.Transcript()); got != 2 {
		t.Fatalf("transcript has %d records, want 2", got)
	}
	view := m.View()
	for _, want := range []string{"user@devifyx:/home/user$ pwd", "Commands: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Welcome") {
		t.Error("banner still shown after a command")
	}
	if m.Input() != "" {
		t.Errorf("input = %q after submit, want empty", m.Input())
	}
}

func TestModel_RevealGatesInput(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{TypingDelay: time.Millisecond})
	cmd := typeLine(m, "whoami")
	if cmd == nil {
		t.Fatal("expected a reveal tick command")
	}
	if !m.Revealing() {
		t.Fatal("expected model to be revealing")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.Input() != "" {
		t.Errorf("input = %q while revealing, want keys ignored", m.Input())
	}
	lines := strings.Split(m.View(), "\n")
	if promptSlot := strings.TrimSpace(lines[len(lines)-2]); promptSlot != "" {
		t.Errorf("prompt line %q shown while revealing", promptSlot)
	}

	ticks := 0
	for m.Revealing() {
		m.Update(revealTickMsg{})
		ticks++
		if ticks > 100 {
			t.Fatal("reveal never finished")
		}
	}
	if ticks != len("user") {
		t.Errorf("reveal took %d ticks, want %d", ticks, len("user"))
	}
	if !strings.Contains(m.View(), "user") {
		t.Error("revealed output missing from view")
	}
}

func TestModel_RevealShowsPrefix(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{TypingDelay: time.Millisecond})
	typeLine(m, "echo abcdef")
	m.Update(revealTickMsg{})
	m.Update(revealTickMsg{})

	output := strings.ReplaceAll(m.View(), "echo abcdef", "")
	if !strings.Contains(output, "ab") || strings.Contains(output, "abc") {
		t.Errorf("want exactly %q revealed:\n%s", "ab", output)
	}
}

func TestModel_ClearShowsBannerAgain(t *testing.T) {
	t.Parallel()

	m, sess := newTestModel(t, Options{Welcome: true, TypingDelay: time.Millisecond})
	typeLine(m, "pwd")
	for m.Revealing() {
		m.Update(revealTickMsg{})
	}
	if cmd := typeLine(m, "clear"); cmd != nil {
		t.Error("clear should not start a reveal")
	}

	if got := len(sess.Transcript()); got != 0 {
		t.Errorf("transcript has %d records after clear, want 0", got)
	}
	if !strings.Contains(m.View(), "Welcome to DevifyX Terminal Emulator") {
		t.Error("banner missing after clear")
	}
}

func TestModel_HistoryKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{})
	typeLine(m, "ls")
	typeLine(m, "pwd")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "pwd"},
		{tea.KeyUp, "ls"},
		{tea.KeyUp, "ls"},
		{tea.KeyDown, "pwd"},
		{tea.KeyDown, ""},
	}
	for i, step := range steps {
		m.Update(tea.KeyMsg{Type: step.key})
		if m.Input() != step.want {
			t.Errorf("step %d: input = %q, want %q", i, m.Input(), step.want)
		}
	}
}

func TestModel_UpWithoutHistoryKeepsTypedText(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ec")})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Input() != "ec" {
		t.Errorf("input = %q, want %q", m.Input(), "ec")
	}
}

func TestModel_TabCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typed string
		want  string
	}{
		{"ec", "echo "},
		{"cl", "clear "},
		{"t", "to"},
		{"zz", "zz"},
		{"ls -", "ls -"},
	}
	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			t.Parallel()

			m, _ := newTestModel(t, Options{})
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.typed)})
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			if m.Input() != tt.want {
				t.Errorf("input = %q, want %q", m.Input(), tt.want)
			}
		})
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{TypingDelay: time.Millisecond})
	typeLine(m, "help")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C should quit even while revealing")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModel_ExitDoesNotQuit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{})
	if cmd := typeLine(m, "exit"); cmd != nil {
		t.Error("exit builtin should not return a command")
	}
	if !strings.Contains(m.View(), "Goodbye! Terminal session ended.") {
		t.Error("exit message missing")
	}
}

func TestModel_WindowSize(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.viewport.Width != 120 || m.viewport.Height != 40-chromeLines {
		t.Errorf("viewport = %dx%d, want 120x%d", m.viewport.Width, m.viewport.Height, 40-chromeLines)
	}
}

func TestScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, s := range []Scheme{SchemeAuto, SchemeDark, SchemeLight} {
		if err := s.Validate(); err != nil {
			t.Errorf("%q.Validate() error = %v", s, err)
		}
	}
	if err := Scheme("neon").Validate(); err == nil {
		t.Error("expected error for unknown scheme")
	}
}
