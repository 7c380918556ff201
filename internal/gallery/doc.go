// Package gallery loads gallery manifests and derives what the grid and overlay views display.
//
// A manifest is a TOML document:
//
//	title = "Summer"
//
//	[[photos]]
//	id = "beach"
//	name = "beach.jpg"
//	width = 4000
//	height = 3000
//	orientation = 6
//
//	  [[photos.annotations]]
//	  kind = "person"
//	  label = "Ana"
//	  box = { center_x = 0.2, center_y = 0.3, width = 0.1, height = 0.1 }
//
// The same structure is accepted as YAML when the file ends in .yaml or .yml.
//
// Photos and annotations without an id receive a generated one. Annotations
// that fail validation are logged and dropped; they never fail the load.
//
// [Overlays] pushes annotation boxes through the photo's orientation, and
// [ParseSteps]/[Replay] drive the selection reducer from a scripted click sequence.
package gallery
