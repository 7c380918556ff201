package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/photox/internal/geometry"
)

// AnnotationKind distinguishes people from pets.
type AnnotationKind string

const (
	KindPerson AnnotationKind = "person"
	KindPet    AnnotationKind = "pet"
)

// Annotation is a tagged region on a photo.
type Annotation struct {
	ID    string         `toml:"id" yaml:"id" json:"id"`
	Kind  AnnotationKind `toml:"kind" yaml:"kind" json:"kind"`
	Label string         `toml:"label" yaml:"label" json:"label"`
	Box   geometry.Box   `toml:"box" yaml:"box" json:"box"`
}

// Validate checks the annotation kind and box bounds.
func (a Annotation) Validate() error {
	switch a.Kind {
	case KindPerson, KindPet:
	default:
		return fmt.Errorf("unknown annotation kind %q", a.Kind)
	}
	return a.Box.Validate()
}

// Photo is a single gallery entry. Width and Height are the original (unrotated) pixel dimensions.
type Photo struct {
	ID          string               `toml:"id" yaml:"id" json:"id"`
	Name        string               `toml:"name" yaml:"name" json:"name"`
	Path        string               `toml:"path" yaml:"path,omitempty" json:"path,omitempty"`
	Width       int                  `toml:"width" yaml:"width" json:"width"`
	Height      int                  `toml:"height" yaml:"height" json:"height"`
	Orientation geometry.Orientation `toml:"orientation" yaml:"orientation" json:"orientation"`
	Annotations []Annotation         `toml:"annotations" yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// DisplaySize returns the pixel size of the photo once oriented for viewing.
func (p Photo) DisplaySize() (int, int) {
	return geometry.DisplaySize(p.Width, p.Height, p.Orientation)
}

// Gallery is an ordered collection of photos.
type Gallery struct {
	Title  string  `toml:"title" yaml:"title" json:"title"`
	Photos []Photo `toml:"photos" yaml:"photos" json:"photos"`
}

// IDs returns photo ids in display order.
func (g *Gallery) IDs() []string {
	ids := make([]string, len(g.Photos))
	for i, p := range g.Photos {
		ids[i] = p.ID
	}
	return ids
}

// Photo looks up a photo by id.
func (g *Gallery) Photo(id string) (*Photo, bool) {
	for i := range g.Photos {
		if g.Photos[i].ID == id {
			return &g.Photos[i], true
		}
	}
	return nil, false
}

// Filter returns the photos whose name contains query, case-insensitively, preserving order.
// An empty query returns every photo.
func (g *Gallery) Filter(query string) []Photo {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Photo, len(g.Photos))
		copy(out, g.Photos)
		return out
	}

	var out []Photo
	for _, p := range g.Photos {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}
