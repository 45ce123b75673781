// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devifyx/devterm/internal/reveal"
	"github.com/devifyx/devterm/internal/session"
)

const (
	appTitle = "DevifyX Terminal"

	defaultWidth  = 80
	defaultHeight = 24

	// header, prompt line and status bar
	chromeLines = 3
)

var welcomeLines = []string{
	"Welcome to DevifyX Terminal Emulator",
	"Type 'help' to see available commands",
	"Press Tab for command completion, Up/Down for history",
}

type (
	// Options configures a Model.
	Options struct {
		// TypingDelay is the delay between revealed characters. Zero shows
		// output at once.
		TypingDelay time.Duration
		// Welcome shows the banner while the transcript is empty.
		Welcome bool
		// Scheme selects the palette variant.
		Scheme Scheme
		// Renderer renders styles; SSH sessions pass a per-connection one.
		Renderer *lipgloss.Renderer
	}

	// Model is the bubbletea model of a terminal session.
	Model struct {
		ctx      context.Context
		sess     *session.Session
		opts     Options
		styles   Styles
		input    textinput.Model
		viewport viewport.Model
		stepper  *reveal.Stepper
		width    int
		height   int
		quitting bool
	}

	revealTickMsg struct{}
)

// New creates a model driving sess. ctx is passed to every submitted line.
func New(ctx context.Context, sess *session.Session, opts Options) *Model {
	if opts.Scheme == "" {
		opts.Scheme = SchemeAuto
	}

	m := &Model{
		ctx:      ctx,
		sess:     sess,
		opts:     opts,
		styles:   NewStyles(opts.Renderer, opts.Scheme),
		viewport: viewport.New(defaultWidth, defaultHeight-chromeLines),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.TextStyle = m.styles.Input
	m.input.Cursor.Style = m.styles.Input
	m.input.Focus()

	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case revealTickMsg:
		return m, m.advance()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.Revealing() {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyUp:
			m.recall(m.sess.Previous)
			return m, nil
		case tea.KeyDown:
			m.recall(m.sess.Next)
			return m, nil
		case tea.KeyTab:
			m.complete()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{m.header(), m.viewport.View()}
	if !m.Revealing() {
		parts = append(parts, m.promptView()+m.input.View())
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, m.statusBar())
	return strings.Join(parts, "\n")
}

// Revealing reports whether output is still being revealed.
func (m *Model) Revealing() bool {
	return m.stepper != nil
}

// Input returns the current content of the prompt line.
func (m *Model) Input() string {
	return m.input.Value()
}

func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()

	res := m.sess.Submit(m.ctx, line)
	if !res.Cleared && m.opts.TypingDelay > 0 && len(res.Records) > 0 {
		last := res.Records[len(res.Records)-1]
		if last.Kind == session.RecordOutput && last.Content != "" {
			m.stepper = reveal.NewStepper(last.Content)
			m.refresh()
			return m.tick()
		}
	}

	m.refresh()
	return nil
}

func (m *Model) advance() tea.Cmd {
	if m.stepper == nil {
		return nil
	}
	if _, done := m.stepper.Step(); done {
		m.stepper = nil
		m.refresh()
		return nil
	}
	m.refresh()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.TypingDelay, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

// recall moves through history; the prompt line only changes when the
// history cursor actually moved.
func (m *Model) recall(move func() string) {
	before := m.sess.HistoryIndex()
	line := move()
	if m.sess.HistoryIndex() == before {
		return
	}
	m.input.SetValue(line)
	m.input.CursorEnd()
}

// complete extends a partially typed command name. A unique match also gets
// a trailing space; several matches are extended to their common prefix.
func (m *Model) complete() {
	typed := m.input.Value()
	if typed == "" || strings.ContainsAny(typed, " \t") {
		return
	}

	matches := m.sess.Complete(typed)
	switch len(matches) {
	case 0:
		return
	case 1:
		m.input.SetValue(matches[0] + " ")
	default:
		m.input.SetValue(commonPrefix(matches))
	}
	m.input.CursorEnd()
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-chromeLines)
	m.input.Width = max(1, width-lipgloss.Width(m.promptView())-1)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m *Model) transcript() string {
	records := m.sess.Transcript()
	if len(records) == 0 {
		if !m.opts.Welcome {
			return ""
		}
		return m.styles.Welcome.Render(strings.Join(welcomeLines, "\n")) + "\n"
	}

	lines := make([]string, 0, len(records))
	for i, r := range records {
		style := m.styles.Output
		if r.Kind == session.RecordInput {
			style = m.styles.Input
		}
		content := r.Content
		if m.stepper != nil && i == len(records)-1 {
			content = m.stepper.Revealed()
		}
		lines = append(lines, style.Render(content))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) promptView() string {
	return m.styles.User.Render(m.sess.Username()+"@"+m.sess.Hostname()+":") +
		m.styles.Path.Render(m.sess.Cwd()) +
		m.styles.Dollar.Render("$ ")
}

func (m *Model) header() string {
	host := m.sess.Username() + "@" + m.sess.Hostname()
	return m.bar(m.styles.Header, m.styles.Title.Render(appTitle), m.styles.Host.Render(host))
}

func (m *Model) statusBar() string {
	return m.bar(m.styles.Status, "Ready", fmt.Sprintf("Commands: %d", m.sess.HistoryLen()))
}

// bar lays out left and right at the edges of a full-width line.
func (m *Model) bar(style lipgloss.Style, left, right string) string {
	inner := m.width - style.GetHorizontalFrameSize()
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
	return style.Render(left + strings.Repeat(" ", gap) + right)
}
