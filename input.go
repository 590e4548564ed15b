package painter3d

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseVector reads "x, y, z" as typed by a user. Anything other than three
// finite numbers is rejected with ErrMalformedInput.
func ParseVector(s string) (Vector3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vector3D{}, fmt.Errorf("vector %q: want 3 components, got %d: %w", s, len(parts), ErrMalformedInput)
	}

	var c [3]float64
	for i, part := range parts {
		v, err := parseFinite(part)
		if err != nil {
			return Vector3D{}, fmt.Errorf("vector %q component %d: %w", s, i, err)
		}
		c[i] = v
	}
	return NewVector3D(c[0], c[1], c[2]), nil
}

// ParseAngle reads a single angle in radians.
func ParseAngle(s string) (float64, error) {
	v, err := parseFinite(s)
	if err != nil {
		return 0, fmt.Errorf("angle: %w", err)
	}
	return v, nil
}

func parseFinite(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrMalformedInput)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite: %w", s, ErrMalformedInput)
	}
	return v, nil
}
