package kanvas

import "errors"

var (
	// ErrStackUnderflow is returned by Restore when the save stack is
	// already at its base frame.
	ErrStackUnderflow = errors.New("kanvas: restore without matching save")

	// ErrZeroOverlap is returned by ReadPixels/WritePixels when the
	// requested region does not intersect the buffer at all.
	ErrZeroOverlap = errors.New("kanvas: pixel region does not overlap buffer")

	// ErrInvalidDimensions is returned when a pixmap is created with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("kanvas: invalid pixmap dimensions")

	// ErrInvalidStops is returned by gradient constructors when the stop
	// list is empty or positions are decreasing or outside [0, 1]. Equal
	// consecutive offsets are valid and form hard stops.
	ErrInvalidStops = errors.New("kanvas: invalid gradient stops")

	// ErrInvalidConfig is returned when a pixmap config is unknown or the
	// row stride is too small for the width.
	ErrInvalidConfig = errors.New("kanvas: invalid pixmap config")
)
