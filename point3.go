package painter3d

import "fmt"

type Point3D struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Add returns the point moved by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

func (p *Point3D) SetCoordinates(x, y, z float64) {
	p.X = x
	p.Y = y
	p.Z = z
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}
