package painter3d

import (
	"fmt"
	"image/color"
	"math"
)

// Entity3D owns a contiguous point arena and the triangles built on it.
type Entity3D struct {
	Name  string
	Color color.RGBA

	points []Point3D
	faces  []*Face
}

func NewEntity3D(name string, col color.RGBA) *Entity3D {
	return &Entity3D{
		Name:   name,
		Color:  col,
		points: make([]Point3D, 0, 8),
		faces:  make([]*Face, 0, 12),
	}
}

// AddPoint appends p and returns its index.
func (e *Entity3D) AddPoint(p Point3D) int {
	e.points = append(e.points, p)
	return len(e.points) - 1
}

// AddPoints appends pts and returns the index of the first one.
func (e *Entity3D) AddPoints(pts ...Point3D) int {
	first := len(e.points)
	e.points = append(e.points, pts...)
	return first
}

// AddFace builds a triangle on three existing points. The face starts with
// the entity colour for fill and border and full ambient/diffuse response.
func (e *Entity3D) AddFace(i0, i1, i2 int) (*Face, error) {
	for _, i := range [3]int{i0, i1, i2} {
		if i < 0 || i >= len(e.points) {
			return nil, fmt.Errorf("face on %q uses point %d of %d: %w", e.Name, i, len(e.points), ErrBadIndex)
		}
	}
	f := &Face{
		owner:              e,
		indices:            [3]int{i0, i1, i2},
		Fill:               e.Color,
		Border:             e.Color,
		ambientSensitivity: 1,
		diffuseSensitivity: 1,
	}
	f.computeAverageZ()
	e.faces = append(e.faces, f)
	return f, nil
}

func (e *Entity3D) NumPoints() int {
	return len(e.points)
}

func (e *Entity3D) NumFaces() int {
	return len(e.faces)
}

func (e *Entity3D) Point(i int) Point3D {
	return e.points[i]
}

// Points returns a copy of the entity's points.
func (e *Entity3D) Points() []Point3D {
	out := make([]Point3D, len(e.points))
	copy(out, e.points)
	return out
}

// SetPoint moves a single point and refreshes face depths.
func (e *Entity3D) SetPoint(i int, p Point3D) error {
	if i < 0 || i >= len(e.points) {
		return fmt.Errorf("set point %d of %d on %q: %w", i, len(e.points), e.Name, ErrBadIndex)
	}
	e.points[i] = p
	e.refreshDepths()
	return nil
}

// Faces returns the entity's faces. The slice is a copy, the faces are not.
func (e *Entity3D) Faces() []*Face {
	out := make([]*Face, len(e.faces))
	copy(out, e.faces)
	return out
}

func (e *Entity3D) refreshDepths() {
	for _, f := range e.faces {
		f.computeAverageZ()
	}
}

func (e *Entity3D) String() string {
	return e.Name
}

// Bounds returns the axis aligned bounding box of the entity's points.
func (e *Entity3D) Bounds() (min, max Point3D) {
	if len(e.points) == 0 {
		return Point3D{}, Point3D{}
	}
	min, max = e.points[0], e.points[0]
	for _, p := range e.points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return min, max
}

// Extents returns the size of the bounding box along each axis.
func (e *Entity3D) Extents() (float64, float64, float64) {
	min, max := e.Bounds()
	return max.X - min.X, max.Y - min.Y, max.Z - min.Z
}

// Centre moves all points so the centre of the bounding box is at the origin.
func (e *Entity3D) Centre() {
	if len(e.points) == 0 {
		return
	}
	min, max := e.Bounds()
	Translate(e, Vector3D{
		X: -(min.X + max.X) / 2,
		Y: -(min.Y + max.Y) / 2,
		Z: -(min.Z + max.Z) / 2,
	})
}
