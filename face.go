package painter3d

import (
	"image/color"
)

// Face is a triangle whose corners are indices into its entity's point
// list. Moving a point of the entity therefore moves every face using it.
type Face struct {
	owner   *Entity3D
	indices [3]int

	Fill   color.RGBA
	Border color.RGBA

	ambientSensitivity float64
	diffuseSensitivity float64

	zavg float64
}

func (f *Face) Entity() *Entity3D {
	return f.owner
}

func (f *Face) Indices() [3]int {
	return f.indices
}

// Points resolves the face's corners against its entity's current points.
func (f *Face) Points() [3]Point3D {
	pts := f.owner.points
	return [3]Point3D{
		pts[f.indices[0]],
		pts[f.indices[1]],
		pts[f.indices[2]],
	}
}

func (f *Face) Point(i int) Point3D {
	return f.owner.points[f.indices[i]]
}

// Normal is derived from the point order on every call.
func (f *Face) Normal() Vector3D {
	p := f.Points()
	return TriangleNormal(p[0], p[1], p[2])
}

// ZAvg returns the cached mean Z of the face's points.
func (f *Face) ZAvg() float64 {
	return f.zavg
}

func (f *Face) computeAverageZ() {
	p := f.Points()
	f.zavg = (p[0].Z + p[1].Z + p[2].Z) / 3
}

// Flip reverses the winding, which flips the normal.
func (f *Face) Flip() {
	f.indices[1], f.indices[2] = f.indices[2], f.indices[1]
}

// MidPoint returns the centroid of the face.
func (f *Face) MidPoint() Point3D {
	p := f.Points()
	return Point3D{
		X: (p[0].X + p[1].X + p[2].X) / 3,
		Y: (p[0].Y + p[1].Y + p[2].Y) / 3,
		Z: (p[0].Z + p[1].Z + p[2].Z) / 3,
	}
}

func (f *Face) SetColor(col color.RGBA) {
	f.Fill = col
}

func (f *Face) SetBorderColor(col color.RGBA) {
	f.Border = col
}

func (f *Face) AmbientSensitivity() float64 {
	return f.ambientSensitivity
}

func (f *Face) DiffuseSensitivity() float64 {
	return f.diffuseSensitivity
}

// SetSensitivity sets the ambient and diffuse weights, each clamped to [0,1].
func (f *Face) SetSensitivity(ambient, diffuse float64) {
	f.ambientSensitivity = clampUnit(ambient)
	f.diffuseSensitivity = clampUnit(diffuse)
}
