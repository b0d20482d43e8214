package dct

import "errors"

var (
	// ErrEmptyInput is returned when an input has zero length along any
	// dimension.
	ErrEmptyInput = errors.New("empty input")

	// ErrNonRectangular is returned when the rows of a 2D input or the
	// rows/columns of a 3D input do not all share the same length.
	ErrNonRectangular = errors.New("non-rectangular input")

	// ErrInvalidAxis is returned when an axis index is out of range for
	// the rank of the array being transformed.
	ErrInvalidAxis = errors.New("axis out of range")

	// ErrShapeMismatch is returned when an array's rank does not match
	// the requested view or operation.
	ErrShapeMismatch = errors.New("shape mismatch")
)
