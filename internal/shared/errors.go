package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Gallery errors
	ErrInvalidManifest = fmt.Errorf("invalid gallery manifest")
	ErrPhotoNotFound   = fmt.Errorf("photo not found")
	ErrEmptyGallery    = fmt.Errorf("gallery has no photos")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
