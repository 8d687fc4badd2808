package export

import "errors"

var (
	ErrEmptyFrame        = errors.New("export: frame has no area")
	ErrUnsupportedFormat = errors.New("export: unsupported format")
	ErrNoFrames          = errors.New("export: nothing recorded")
)
