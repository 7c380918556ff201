// Package models defines the gallery entities shared by the CLI and TUI.
//
//   - [Gallery] : an ordered list of photos, the display order used for range selection
//   - [Photo] : image metadata with original pixel size and EXIF orientation
//   - [Annotation] : a tagged face or pet region stored against the original image
//
// All entities are plain values decoded from a gallery manifest; nothing here is persisted.
package models
