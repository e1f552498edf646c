package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nao1215/pwstrength/internal/generator"
	"github.com/nao1215/pwstrength/internal/session"
)

// Run starts the interactive session and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, history *session.History, worker *generator.Worker, cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(history, worker, cfg), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}
	return nil
}
