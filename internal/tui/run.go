// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/devifyx/devterm/internal/session"
)

// Run shows sess full-screen until the user presses Ctrl+C or ctx is done.
func Run(ctx context.Context, sess *session.Session, opts Options, progOpts ...tea.ProgramOption) error {
	model := New(ctx, sess, opts)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)

	p := tea.NewProgram(model, progOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}
