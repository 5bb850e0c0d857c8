package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/daylist/internal/tasklist"
)

// Run starts the interactive task list and blocks until the user quits
func Run(ctx context.Context, ctrl *tasklist.Controller, opts Options) error {
	model := NewModel(ctx, ctrl, opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
