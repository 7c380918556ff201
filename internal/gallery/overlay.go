package gallery

import (
	"image"

	"github.com/desertthunder/photox/internal/geometry"
	"github.com/desertthunder/photox/internal/models"
	"github.com/desertthunder/photox/internal/selection"
)

// Overlay is one annotation positioned over the displayed photo.
type Overlay struct {
	Annotation models.Annotation    `json:"annotation"`
	Rect       geometry.DisplayRect `json:"rect"`
	Pixels     image.Rectangle      `json:"pixels"`
	Hidden     bool                 `json:"hidden"`
}

// Overlays positions every annotation of p in display space.
//
// Annotations flagged in hidden are still returned with Hidden set so views can list them.
func Overlays(p models.Photo, hidden selection.Toggles[string]) []Overlay {
	w, h := p.DisplaySize()
	out := make([]Overlay, len(p.Annotations))
	for i, a := range p.Annotations {
		rect := geometry.Transform(a.Box, p.Orientation)
		out[i] = Overlay{
			Annotation: a,
			Rect:       rect,
			Pixels:     rect.Pixels(w, h),
			Hidden:     hidden.Has(a.ID),
		}
	}
	return out
}

// Visible filters out hidden overlays.
func Visible(overlays []Overlay) []Overlay {
	var out []Overlay
	for _, o := range overlays {
		if !o.Hidden {
			out = append(out, o)
		}
	}
	return out
}
