// Package geometry maps annotation boxes from an original image onto its displayed orientation.
//
// Boxes are stored against the original, unrotated pixel grid. Viewers render
// images rotated according to their EXIF orientation, so every overlay
// rectangle has to be pushed through the same rotation before drawing.
package geometry

import "fmt"

// Orientation is an EXIF orientation code (1-8).
type Orientation int

const (
	Normal          Orientation = iota + 1 // 1
	MirrorH                                // 2
	Rotate180                              // 3
	MirrorV                                // 4
	MirrorHRotate270                       // 5
	Rotate90                               // 6
	MirrorHRotate90                        // 7
	Rotate270                              // 8
)

var orientationNames = map[Orientation]string{
	Normal:           "normal",
	MirrorH:          "mirror-horizontal",
	Rotate180:        "rotate-180",
	MirrorV:          "mirror-vertical",
	MirrorHRotate270: "mirror-horizontal-rotate-270",
	Rotate90:         "rotate-90",
	MirrorHRotate90:  "mirror-horizontal-rotate-90",
	Rotate270:        "rotate-270",
}

// Valid reports whether o is one of the eight EXIF codes.
func (o Orientation) Valid() bool {
	return o >= Normal && o <= Rotate270
}

// Normalize returns o, or [Normal] for codes outside 1-8.
func (o Orientation) Normalize() Orientation {
	if !o.Valid() {
		return Normal
	}
	return o
}

// SwapsAxes reports whether displaying with o exchanges width and height.
func (o Orientation) SwapsAxes() bool {
	return o.Normalize() >= MirrorHRotate270
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// DisplaySize returns the pixel dimensions of an image of the given original size once oriented for viewing.
func DisplaySize(width, height int, o Orientation) (int, int) {
	if o.SwapsAxes() {
		return height, width
	}
	return width, height
}
