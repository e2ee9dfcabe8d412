package frame

import "errors"

var (
	// ErrOddDimensions is returned when a width or height is not even.
	// Chroma is stored at half resolution, so both must divide by two.
	ErrOddDimensions = errors.New("width and height must be even")

	// ErrSizeMismatch is returned when a frame buffer length disagrees with
	// the length implied by the declared width and height.
	ErrSizeMismatch = errors.New("frame size mismatch")

	// ErrNotFound is returned when an input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrFormat is returned when an input cannot be decoded or a format is
	// not supported.
	ErrFormat = errors.New("unsupported format")

	// ErrIO is returned when reading or writing a file fails.
	ErrIO = errors.New("i/o failure")
)
