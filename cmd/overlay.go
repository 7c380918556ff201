package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/photox/internal/gallery"
	"github.com/desertthunder/photox/internal/selection"
	"github.com/desertthunder/photox/internal/shared"
	"github.com/urfave/cli/v3"
)

type displaySize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// overlayResult is the JSON shape of the overlay command output.
type overlayResult struct {
	Photo       string            `json:"photo"`
	Orientation int               `json:"orientation"`
	Display     displaySize       `json:"display"`
	Overlays    []gallery.Overlay `json:"overlays"`
}

// Overlay prints a photo's annotations positioned for its display orientation.
func (r *Runner) Overlay(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	if id == "" {
		return fmt.Errorf("%w: --id", shared.ErrMissingArgument)
	}

	g, err := r.loadGallery(cmd)
	if err != nil {
		return err
	}

	photo, ok := g.Photo(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrPhotoNotFound, id)
	}

	var hidden selection.Toggles[string]
	for _, h := range cmd.StringSlice("hide") {
		hidden = hidden.Set(h, true)
	}

	overlays := gallery.Overlays(*photo, hidden)
	if !cmd.Bool("all") {
		overlays = gallery.Visible(overlays)
	}

	w, h := photo.DisplaySize()
	r.logger.Debug("positioned overlays", "photo", id, "orientation", photo.Orientation.Normalize(), "count", len(overlays))

	if cmd.Bool("json") {
		return r.writeJSON(overlayResult{
			Photo:       photo.ID,
			Orientation: int(photo.Orientation.Normalize()),
			Display:     displaySize{Width: w, Height: h},
			Overlays:    overlays,
		}, cmd.Bool("pretty"))
	}

	header := fmt.Sprintf("%s · %s · displayed %dx%d", photo.Name, photo.Orientation.Normalize(), w, h)
	if err := r.writePlainHeader(header); err != nil {
		return err
	}

	if len(overlays) == 0 {
		return r.writePlain("No annotations.\n")
	}

	for _, o := range overlays {
		a, rect, px := o.Annotation, o.Rect, o.Pixels
		line := fmt.Sprintf("  %-10s %-7s x=%.3f y=%.3f w=%.3f h=%.3f  px %d,%d %dx%d",
			a.Label, a.Kind, rect.X, rect.Y, rect.W, rect.H, px.Min.X, px.Min.Y, px.Dx(), px.Dy())
		if o.Hidden {
			line += "  (hidden)"
		}
		if err := r.writePlain("%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
