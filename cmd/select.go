package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/photox/internal/formatter"
	"github.com/desertthunder/photox/internal/gallery"
	"github.com/desertthunder/photox/internal/models"
	"github.com/desertthunder/photox/internal/shared"
	"github.com/urfave/cli/v3"
)

// selectResult is the JSON shape of the select command output.
type selectResult struct {
	Selected []string `json:"selected"`
	Anchor   *int     `json:"anchor"`
	AnchorID string   `json:"anchor_id,omitempty"`
	Total    int      `json:"total"`
}

// Select replays scripted clicks against the manifest's photo order and prints the final selection.
func (r *Runner) Select(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("%w: at least one step (e.g. click:ID)", shared.ErrMissingArgument)
	}

	steps, err := gallery.ParseSteps(args)
	if err != nil {
		return err
	}

	g, err := r.loadGallery(cmd)
	if err != nil {
		return err
	}

	if len(g.Photos) == 0 {
		return fmt.Errorf("%w: nothing to select", shared.ErrEmptyGallery)
	}

	photos := g.Filter(cmd.String("filter"))
	if len(photos) == 0 {
		r.logger.Warn("no photos to select from", "filter", cmd.String("filter"))
	}

	ids := make([]string, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}

	state := gallery.Replay(ids, steps)
	r.logger.Debug("replayed selection", "steps", len(steps), "selected", state.Len())

	result := selectResult{Selected: state.Selected(), Total: len(ids)}
	if idx, ok := state.Anchor(); ok {
		result.Anchor = &idx
		result.AnchorID, _ = state.AnchorID()
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	if cmd.IsSet("format") || cmd.String("out") != "" {
		return r.exportSelection(cmd, g, result)
	}

	if err := r.writePlainHeader(fmt.Sprintf("Selection (%d of %d photos)", state.Len(), len(ids))); err != nil {
		return err
	}
	for _, p := range photos {
		if state.Contains(p.ID) {
			if err := r.writePlain("  ✓ %-12s %s\n", p.ID, p.Name); err != nil {
				return err
			}
		}
	}

	if result.Anchor == nil {
		return r.writePlain("Anchor: none\n")
	}
	return r.writePlain("Anchor: %s (#%d)\n", result.AnchorID, *result.Anchor)
}

// exportSelection renders the selection with the formatter, to --out when given and to output otherwise.
func (r *Runner) exportSelection(cmd *cli.Command, g *models.Gallery, result selectResult) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	export := &formatter.SelectionExport{
		Title:    g.Title,
		Photos:   make([]models.Photo, 0, len(result.Selected)),
		AnchorID: result.AnchorID,
		Total:    result.Total,
	}
	for _, id := range result.Selected {
		if p, ok := g.Photo(id); ok {
			export.Photos = append(export.Photos, *p)
		}
	}

	if out := cmd.String("out"); out != "" {
		path, err := formatter.WriteExport(export, format, out)
		if err != nil {
			return err
		}
		r.logger.Info("exported selection", "path", path, "format", format, "photos", len(export.Photos))
		return r.writePlain("✓ Exported %d photos to %s\n", len(export.Photos), path)
	}

	data, err := formatter.Export(export, format)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
