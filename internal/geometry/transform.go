package geometry

import (
	"fmt"
	"image"
	"math"
)

// Box is an annotation region normalized to [0,1] against the original, unrotated image.
type Box struct {
	CenterX float64 `toml:"center_x" yaml:"center_x" json:"center_x"`
	CenterY float64 `toml:"center_y" yaml:"center_y" json:"center_y"`
	Width   float64 `toml:"width" yaml:"width" json:"width"`
	Height  float64 `toml:"height" yaml:"height" json:"height"`
}

// Validate checks that every field of b lies within [0,1].
func (b Box) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"center_x", b.CenterX},
		{"center_y", b.CenterY},
		{"width", b.Width},
		{"height", b.Height},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			return fmt.Errorf("%s out of range: %v", f.name, f.value)
		}
	}
	return nil
}

// DisplayRect is a top-left anchored rectangle normalized to [0,1] against the displayed image.
type DisplayRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Pixels projects r onto an image displayed at width x height pixels.
func (r DisplayRect) Pixels(width, height int) image.Rectangle {
	x0 := int(math.Round(r.X * float64(width)))
	y0 := int(math.Round(r.Y * float64(height)))
	x1 := int(math.Round((r.X + r.W) * float64(width)))
	y1 := int(math.Round((r.Y + r.H) * float64(height)))
	return image.Rect(x0, y0, x1, y1)
}

// Transform maps b into display space for orientation o.
//
// Unknown orientation codes are treated as [Normal].
func Transform(b Box, o Orientation) DisplayRect {
	x, y := b.CenterX, b.CenterY
	w, h := b.Width, b.Height

	switch o.Normalize() {
	case MirrorH:
		x = 1 - x
	case Rotate180:
		x, y = 1-x, 1-y
	case MirrorV:
		y = 1 - y
	case MirrorHRotate270:
		x, y = y, x
	case Rotate90:
		x, y = y, 1-x
	case MirrorHRotate90:
		x, y = 1-y, 1-x
	case Rotate270:
		x, y = 1-y, x
	}
	if o.SwapsAxes() {
		w, h = h, w
	}

	return DisplayRect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
