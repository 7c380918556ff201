// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// Manifest is a small gallery used across package tests.
//
// Photo order is a, b, c, d, e. Photo b is rotated 90° (orientation 6) and carries
// one valid and one out-of-range annotation.
const Manifest = `title = "Fixture"

[[photos]]
id = "a"
name = "harbor.jpg"
width = 4000
height = 3000
orientation = 1

  [[photos.annotations]]
  id = "face-a1"
  kind = "person"
  label = "Ana"
  box = { center_x = 0.5, center_y = 0.5, width = 0.2, height = 0.2 }

[[photos]]
id = "b"
name = "beach.jpg"
width = 4000
height = 3000
orientation = 6

  [[photos.annotations]]
  id = "face-b1"
  kind = "person"
  label = "Ben"
  box = { center_x = 0.2, center_y = 0.3, width = 0.1, height = 0.2 }

  [[photos.annotations]]
  id = "face-b2"
  kind = "pet"
  label = "Biscuit"
  box = { center_x = 1.4, center_y = 0.3, width = 0.1, height = 0.1 }

[[photos]]
id = "c"
name = "beach-sunset.jpg"
width = 3000
height = 2000
orientation = 3

[[photos]]
id = "d"
name = "garden.jpg"
width = 2000
height = 2000
orientation = 8

  [[photos.annotations]]
  kind = "pet"
  label = "Mochi"
  box = { center_x = 0.25, center_y = 0.75, width = 0.1, height = 0.3 }

[[photos]]
id = "e"
name = "porch.jpg"
width = 1200
height = 800
`

// WriteManifest writes [Manifest] to a temporary directory and returns its path.
func WriteManifest(t *testing.T) string {
	t.Helper()
	return MustWriteFile(t, "gallery.toml", Manifest)
}

// MustWriteFile writes content to name inside a fresh temporary directory.
func MustWriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
