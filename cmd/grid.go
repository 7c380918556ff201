package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/photox/internal/shared"
	"github.com/desertthunder/photox/internal/ui"
	"github.com/urfave/cli/v3"
)

// Grid launches the interactive gallery grid and prints the final selection on exit.
func (r *Runner) Grid(ctx context.Context, cmd *cli.Command) error {
	path, err := r.manifestPath(cmd)
	if err != nil {
		return err
	}

	columns := int(cmd.Int("columns"))
	if columns == 0 {
		columns = r.config.Gallery.Columns
	}
	if columns < 1 {
		return fmt.Errorf("%w: columns must be at least 1", shared.ErrInvalidFlag)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	if err := shared.ApplyLogConfig(fileLogger, r.config.Log); err != nil {
		return err
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ui.Options{
		ManifestPath: path,
		Columns:      columns,
		Logger:       fileLogger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	m, ok := final.(*ui.Model)
	if !ok {
		return nil
	}
	if err := m.Err(); err != nil {
		return err
	}

	selected := m.Selected()
	if len(selected) == 0 {
		return nil
	}
	return r.writeJSON(map[string][]string{"selected": selected}, false)
}
