package painter3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Axis int

const (
	ROTX Axis = iota
	ROTY
	ROTZ
)

func (a Axis) String() string {
	switch a {
	case ROTX:
		return "x"
	case ROTY:
		return "y"
	case ROTZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// axisTolerance is how close to the Z axis a rotation axis may be before
// the alignment rotations are skipped.
const axisTolerance = 1e-9

// NewRotationMatrix returns the right-handed rotation by theta radians
// about a principal axis.
func NewRotationMatrix(axis Axis, theta float64) mgl64.Mat3 {
	switch axis {
	case ROTX:
		return mgl64.Rotate3DX(theta)
	case ROTY:
		return mgl64.Rotate3DY(theta)
	case ROTZ:
		return mgl64.Rotate3DZ(theta)
	}
	return mgl64.Ident3()
}

// AxisRotationMatrix builds a rotation by theta about an arbitrary axis
// through the origin. The axis is first rotated about X into the XZ plane,
// then about Y onto Z; the Z rotation is applied and both alignments are
// undone.
func AxisRotationMatrix(axis Vector3D, theta float64) (mgl64.Mat3, error) {
	u, err := axis.Unit()
	if err != nil {
		return mgl64.Ident3(), fmt.Errorf("rotation axis %v: %w", axis, err)
	}

	if math.Hypot(u.X, u.Y) < axisTolerance {
		if u.Z < 0 {
			theta = -theta
		}
		return mgl64.Rotate3DZ(theta), nil
	}

	d := math.Hypot(u.Y, u.Z)
	alpha := math.Atan2(u.Y, u.Z)
	beta := math.Atan2(-u.X, d)

	align := mgl64.Rotate3DY(beta).Mul3(mgl64.Rotate3DX(alpha))
	unalign := mgl64.Rotate3DX(-alpha).Mul3(mgl64.Rotate3DY(-beta))
	return unalign.Mul3(mgl64.Rotate3DZ(theta)).Mul3(align), nil
}

func applyMatrix(m mgl64.Mat3, p Point3D) Point3D {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return Point3D{X: v[0], Y: v[1], Z: v[2]}
}

// ApplyMatrix transforms every point of e by m and refreshes face depths.
func ApplyMatrix(e *Entity3D, m mgl64.Mat3) {
	for i := range e.points {
		e.points[i] = applyMatrix(m, e.points[i])
	}
	e.refreshDepths()
}

// RotateAxis rotates e about a principal axis.
func RotateAxis(e *Entity3D, axis Axis, theta float64) {
	ApplyMatrix(e, NewRotationMatrix(axis, theta))
}

// RotateAbout rotates e about an arbitrary axis through the origin. A zero
// axis leaves e untouched and returns ErrZeroLength.
func RotateAbout(e *Entity3D, axis Vector3D, theta float64) error {
	m, err := AxisRotationMatrix(axis, theta)
	if err != nil {
		return err
	}
	ApplyMatrix(e, m)
	return nil
}

func Translate(e *Entity3D, v Vector3D) {
	for i := range e.points {
		e.points[i] = e.points[i].Add(v)
	}
	e.refreshDepths()
}

// Scale multiplies each coordinate by the matching component of v. The
// scale is anchored at the origin; translate first to scale about another
// point.
func Scale(e *Entity3D, v Vector3D) {
	for i := range e.points {
		p := &e.points[i]
		p.SetCoordinates(p.X*v.X, p.Y*v.Y, p.Z*v.Z)
	}
	e.refreshDepths()
}

// RotateScene rotates every entity and the light about X, then about Y.
// The light keeps its place relative to the geometry, so this reads as
// moving the viewer around the scene.
func RotateScene(s *Scene, thetaX, thetaY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rotate(mgl64.Rotate3DY(thetaY).Mul3(mgl64.Rotate3DX(thetaX)))
}

// RotateSceneAxis rotates every entity and the light about one axis.
func RotateSceneAxis(s *Scene, axis Axis, theta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rotate(NewRotationMatrix(axis, theta))
}

func (s *Scene) rotate(m mgl64.Mat3) {
	for _, e := range s.entities {
		ApplyMatrix(e, m)
	}
	s.light = applyMatrix(m, s.light)
}

// MoveLight places the light at p.
func MoveLight(s *Scene, p Point3D) {
	s.SetLight(p)
}
