package painter3d

import (
	"image/color"
	"testing"
)

func TestEntityBounds(t *testing.T) {
	testCases := []struct {
		name             string
		points           []Point3D
		wantMin, wantMax Point3D
	}{
		{"empty", nil, Point3D{}, Point3D{}},
		{"single", []Point3D{NewPoint3D(1, 2, 3)}, NewPoint3D(1, 2, 3), NewPoint3D(1, 2, 3)},
		{
			"first point in the middle",
			[]Point3D{NewPoint3D(0, 0, 0), NewPoint3D(5, -5, 2), NewPoint3D(-3, 4, -1), NewPoint3D(2, 1, 9)},
			NewPoint3D(-3, -5, -1), NewPoint3D(5, 4, 9),
		},
		{
			"descending",
			[]Point3D{NewPoint3D(3, 3, 3), NewPoint3D(2, 2, 2), NewPoint3D(1, 1, 1)},
			NewPoint3D(1, 1, 1), NewPoint3D(3, 3, 3),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity3D(tc.name, color.RGBA{A: 255})
			e.AddPoints(tc.points...)
			gotMin, gotMax := e.Bounds()
			if gotMin != tc.wantMin || gotMax != tc.wantMax {
				t.Errorf("Bounds() = %v %v, want %v %v", gotMin, gotMax, tc.wantMin, tc.wantMax)
			}
		})
	}
}
