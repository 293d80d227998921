package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotview/internal/shared"
	"github.com/desertthunder/spotview/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive playlist view.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	r.ensureConfig()

	// Redirect logs to file to avoid interfering with TUI rendering
	if r.session == nil {
		fileLogger, err := shared.NewFileLogger(r.config.Logging.File)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		shared.SetLogLevel(fileLogger, r.logger.GetLevel())
		r.SetLogger(fileLogger)
	}

	session, err := r.Session()
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, session, r.playlistID(cmd))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
