package painter3d

import "errors"

var (
	// ErrZeroLength is returned when a vector with no length has to be
	// normalised, e.g. a rotation axis of (0, 0, 0).
	ErrZeroLength = errors.New("painter3d: zero length vector")

	// ErrCameraCoincident is returned when a point lies in the camera's Z
	// plane and the perspective divide is undefined.
	ErrCameraCoincident = errors.New("painter3d: point coincident with camera plane")

	// ErrMalformedInput is returned for user supplied vectors or angles that
	// cannot be parsed.
	ErrMalformedInput = errors.New("painter3d: malformed input")

	// ErrBadIndex is returned when a face refers to a point its entity does
	// not own.
	ErrBadIndex = errors.New("painter3d: point index out of range")
)
