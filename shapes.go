package painter3d

import "image/color"

// Side colours of a cube, one per pair of triangles.
var cubeColors = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},     // red
	{R: 255, G: 200, B: 0, A: 255},   // orange
	{R: 0, G: 255, B: 0, A: 255},     // green
	{R: 255, G: 255, B: 255, A: 255}, // white
	{R: 255, G: 255, B: 0, A: 255},   // yellow
	{R: 64, G: 64, B: 64, A: 255},    // dark grey
}

// cubeFaces lists the 12 triangles of a cube over the corner order used by
// NewCube, wound counter-clockwise seen from outside. Pairs share a side:
// -X, +X, +Z, -Z, +Y, -Y.
var cubeFaces = [12][3]int{
	{1, 6, 7}, {1, 7, 4},
	{0, 2, 5}, {0, 5, 3},
	{0, 1, 4}, {0, 4, 2},
	{3, 5, 7}, {3, 7, 6},
	{3, 6, 0}, {0, 6, 1},
	{7, 5, 2}, {7, 2, 4},
}

// NewCube builds a cube with the given side length centred on (x, y, z).
func NewCube(name string, sideLength, x, y, z float64) *Entity3D {
	l := sideLength / 2
	cube := NewEntity3D(name, cubeColors[0])
	cube.AddPoints(
		NewPoint3D(l+x, l+y, l+z),
		NewPoint3D(-l+x, l+y, l+z),
		NewPoint3D(l+x, -l+y, l+z),
		NewPoint3D(l+x, l+y, -l+z),
		NewPoint3D(-l+x, -l+y, l+z),
		NewPoint3D(l+x, -l+y, -l+z),
		NewPoint3D(-l+x, l+y, -l+z),
		NewPoint3D(-l+x, -l+y, -l+z),
	)

	for i, idx := range cubeFaces {
		// indices are static and always in range
		f, _ := cube.AddFace(idx[0], idx[1], idx[2])
		col := cubeColors[(i/2)%len(cubeColors)]
		f.SetColor(col)
		f.SetBorderColor(col)
		f.SetSensitivity(1, 1)
	}
	return cube
}
