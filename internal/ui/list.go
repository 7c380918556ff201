package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/photox/internal/gallery"
)

var (
	_ list.Item = overlayItem{}
)

// overlayItem wraps [gallery.Overlay] to implement [list.Item].
type overlayItem struct {
	overlay gallery.Overlay
}

func (i overlayItem) FilterValue() string { return i.overlay.Annotation.Label }
func (i overlayItem) Title() string {
	a := i.overlay.Annotation
	title := fmt.Sprintf("%s (%s)", a.Label, a.Kind)
	if i.overlay.Hidden {
		title += " · hidden"
	}
	return title
}
func (i overlayItem) Description() string {
	r, px := i.overlay.Rect, i.overlay.Pixels
	return fmt.Sprintf("x=%.3f y=%.3f w=%.3f h=%.3f • px %d,%d %dx%d",
		r.X, r.Y, r.W, r.H, px.Min.X, px.Min.Y, px.Dx(), px.Dy())
}
