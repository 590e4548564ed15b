package painter3d

import (
	"fmt"
	"math"
)

type Vector3D struct {
	X float64
	Y float64
	Z float64
}

func NewVector3D(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// VectorBetween returns the vector pointing from a to b (b - a).
func VectorBetween(a, b Point3D) Vector3D {
	return Vector3D{
		X: b.X - a.X,
		Y: b.Y - a.Y,
		Z: b.Z - a.Z,
	}
}

func (v Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns v scaled to length 1. A zero vector has no direction and
// yields ErrZeroLength.
func (v Vector3D) Unit() (Vector3D, error) {
	length := v.Length()
	if length == 0 {
		return Vector3D{}, ErrZeroLength
	}
	return Vector3D{X: v.X / length, Y: v.Y / length, Z: v.Z / length}, nil
}

func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3D) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3D) String() string {
	return fmt.Sprintf("<%.3f, %.3f, %.3f>", v.X, v.Y, v.Z)
}

// Cross calculates the right-handed cross product a x b.
func Cross(a, b Vector3D) Vector3D {
	return Vector3D{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Dot computes the dot product of two vectors.
func Dot(a, b Vector3D) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Project returns the projection of a onto b. Projecting onto a zero vector
// gives the zero vector.
func Project(a, b Vector3D) Vector3D {
	lenSq := Dot(b, b)
	if lenSq == 0 {
		return Vector3D{}
	}
	return b.Scale(Dot(a, b) / lenSq)
}

// TriangleNormal returns the unit normal of the triangle p0, p1, p2, wound
// counter-clockwise around the normal. Collinear or duplicate points give the
// zero vector.
func TriangleNormal(p0, p1, p2 Point3D) Vector3D {
	n, err := Cross(VectorBetween(p0, p1), VectorBetween(p0, p2)).Unit()
	if err != nil {
		return Vector3D{}
	}
	return n
}
