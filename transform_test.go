package painter3d

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const transformTolerance = 1e-9

func assertDepthsCurrent(t *testing.T, e *Entity3D) {
	t.Helper()
	for i, f := range e.Faces() {
		p := f.Points()
		want := (p[0].Z + p[1].Z + p[2].Z) / 3
		if math.Abs(f.ZAvg()-want) > transformTolerance {
			t.Fatalf("face %d ZAvg() = %v, want %v", i, f.ZAvg(), want)
		}
	}
}

func TestRotationMatrices(t *testing.T) {
	testCases := []struct {
		name  string
		axis  Axis
		theta float64
		in    Point3D
		want  Point3D
	}{
		{"x quarter turn", ROTX, math.Pi / 2, NewPoint3D(0, 1, 0), NewPoint3D(0, 0, 1)},
		{"y quarter turn", ROTY, math.Pi / 2, NewPoint3D(0, 0, 1), NewPoint3D(1, 0, 0)},
		{"z quarter turn", ROTZ, math.Pi / 2, NewPoint3D(1, 0, 0), NewPoint3D(0, 1, 0)},
		{"x leaves x alone", ROTX, 1.3, NewPoint3D(5, 0, 0), NewPoint3D(5, 0, 0)},
		{"z half turn", ROTZ, math.Pi, NewPoint3D(1, 2, 3), NewPoint3D(-1, -2, 3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := applyMatrix(NewRotationMatrix(tc.axis, tc.theta), tc.in)
			if !almostEqualPoint(got, tc.want, transformTolerance) {
				t.Errorf("rotate %v about %v = %v, want %v", tc.in, tc.axis, got, tc.want)
			}
		})
	}
}

func TestAxisRotationMatchesRodrigues(t *testing.T) {
	axes := []Vector3D{
		NewVector3D(1, 2, 3),
		NewVector3D(1, 0, 0),
		NewVector3D(0, 1, 0),
		NewVector3D(0, 0, 1),
		NewVector3D(0, 0, -4),
		NewVector3D(-2, 0.5, -1),
		NewVector3D(1e-12, 0, 1),
		NewVector3D(0, -3, -3),
	}
	points := []Point3D{
		NewPoint3D(1, 0, 0),
		NewPoint3D(0, 1, 0),
		NewPoint3D(3, -2, 7),
	}

	for _, axis := range axes {
		for _, theta := range []float64{0.3, -1.2, math.Pi} {
			m, err := AxisRotationMatrix(axis, theta)
			if err != nil {
				t.Fatalf("AxisRotationMatrix(%v) error = %v", axis, err)
			}
			unit, _ := axis.Unit()
			ref := mgl64.HomogRotate3D(theta, mgl64.Vec3{unit.X, unit.Y, unit.Z})
			for _, p := range points {
				got := applyMatrix(m, p)
				w := ref.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
				want := NewPoint3D(w[0], w[1], w[2])
				if !almostEqualPoint(got, want, 1e-6) {
					t.Errorf("rotate %v about %v by %v = %v, want %v", p, axis, theta, got, want)
				}
			}
		}
	}
}

func TestRotateAboutZeroAxis(t *testing.T) {
	cube := NewCube("cube", 2, 0, 0, 0)
	before := cube.Points()

	err := RotateAbout(cube, Vector3D{}, 1)
	if !errors.Is(err, ErrZeroLength) {
		t.Fatalf("RotateAbout() error = %v, want ErrZeroLength", err)
	}
	for i, p := range cube.Points() {
		if p != before[i] {
			t.Errorf("point %d moved to %v after failed rotation", i, p)
		}
	}
}

func TestTransformsKeepDepthsCurrent(t *testing.T) {
	cube := NewCube("cube", 10, 1, 2, 3)
	assertDepthsCurrent(t, cube)

	steps := []struct {
		name string
		fn   func(e *Entity3D)
	}{
		{"translate", func(e *Entity3D) { Translate(e, NewVector3D(4, -5, 60)) }},
		{"rotate x", func(e *Entity3D) { RotateAxis(e, ROTX, 0.4) }},
		{"rotate y", func(e *Entity3D) { RotateAxis(e, ROTY, -1.1) }},
		{"scale", func(e *Entity3D) { Scale(e, NewVector3D(2, 0.5, 3)) }},
		{"rotate z", func(e *Entity3D) { RotateAxis(e, ROTZ, 2.5) }},
		{"rotate about axis", func(e *Entity3D) {
			if err := RotateAbout(e, NewVector3D(1, 1, 0), 0.9); err != nil {
				t.Fatal(err)
			}
		}},
		{"set point", func(e *Entity3D) {
			if err := e.SetPoint(0, NewPoint3D(0, 0, 1000)); err != nil {
				t.Fatal(err)
			}
		}},
		{"centre", func(e *Entity3D) { e.Centre() }},
	}

	for _, step := range steps {
		step.fn(cube)
		t.Run(step.name, func(t *testing.T) {
			assertDepthsCurrent(t, cube)
		})
	}
}

func TestScaleAnchoredAtOrigin(t *testing.T) {
	cube := NewCube("cube", 2, 10, 0, 0)
	Scale(cube, NewVector3D(2, 2, 2))

	min, max := cube.Bounds()
	if !almostEqual(min.X, 18) || !almostEqual(max.X, 22) {
		t.Errorf("scaled X range = [%v, %v], want [18, 22]", min.X, max.X)
	}
	if !almostEqual(min.Y, -2) || !almostEqual(max.Y, 2) {
		t.Errorf("scaled Y range = [%v, %v], want [-2, 2]", min.Y, max.Y)
	}
}

func TestTranslateMovesFacesWithPoints(t *testing.T) {
	cube := NewCube("cube", 2, 0, 0, 0)
	face := cube.Faces()[0]
	before := face.Points()

	Translate(cube, NewVector3D(0, 0, 5))

	after := face.Points()
	for i := range after {
		if !almostEqual(after[i].Z, before[i].Z+5) {
			t.Errorf("face point %d z = %v, want %v", i, after[i].Z, before[i].Z+5)
		}
	}
	if !almostEqual(face.ZAvg(), 5+(before[0].Z+before[1].Z+before[2].Z)/3) {
		t.Errorf("ZAvg() = %v not refreshed", face.ZAvg())
	}
}

func TestRotateSceneRoundTrip(t *testing.T) {
	s := NewScene()
	a := NewCube("a", 50, 10, 20, 30)
	b := NewCube("b", 5, -100, 0, 0)
	s.AddEntity(a)
	s.AddEntity(b)
	s.SetLight(NewPoint3D(30, 40, 500))

	beforeA, beforeB, beforeLight := a.Points(), b.Points(), s.Light()

	for _, axis := range []Axis{ROTX, ROTY, ROTZ} {
		RotateSceneAxis(s, axis, 0.7)
		RotateSceneAxis(s, axis, -0.7)
	}

	for i, p := range a.Points() {
		if !almostEqualPoint(p, beforeA[i], transformTolerance) {
			t.Errorf("a point %d = %v, want %v", i, p, beforeA[i])
		}
	}
	for i, p := range b.Points() {
		if !almostEqualPoint(p, beforeB[i], transformTolerance) {
			t.Errorf("b point %d = %v, want %v", i, p, beforeB[i])
		}
	}
	if !almostEqualPoint(s.Light(), beforeLight, transformTolerance) {
		t.Errorf("light = %v, want %v", s.Light(), beforeLight)
	}
	assertDepthsCurrent(t, a)
	assertDepthsCurrent(t, b)
}

func TestRotateSceneMovesLight(t *testing.T) {
	s := NewScene()
	s.SetLight(NewPoint3D(0, 0, 100))

	RotateScene(s, 0, math.Pi/2)

	if !almostEqualPoint(s.Light(), NewPoint3D(100, 0, 0), transformTolerance) {
		t.Errorf("light after scene rotation = %v, want (100, 0, 0)", s.Light())
	}
}
