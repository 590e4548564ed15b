package painter3d

import "testing"

func TestNewCube(t *testing.T) {
	cube := NewCube("cube", 4, 10, -5, 2)

	if cube.NumPoints() != 8 || cube.NumFaces() != 12 {
		t.Fatalf("cube has %d points and %d faces, want 8 and 12", cube.NumPoints(), cube.NumFaces())
	}

	minP, maxP := cube.Bounds()
	if !almostEqualPoint(minP, NewPoint3D(8, -7, 0), 1e-9) || !almostEqualPoint(maxP, NewPoint3D(12, -3, 4), 1e-9) {
		t.Errorf("Bounds() = %v %v", minP, maxP)
	}

	centre := NewPoint3D(10, -5, 2)
	for i, f := range cube.Faces() {
		n := f.Normal()
		if n.IsZero() {
			t.Fatalf("face %d is degenerate", i)
		}
		outward := VectorBetween(centre, f.MidPoint())
		if Dot(n, outward) <= 0 {
			t.Errorf("face %d normal %v points inwards", i, n)
		}
		if f.AmbientSensitivity() != 1 || f.DiffuseSensitivity() != 1 {
			t.Errorf("face %d sensitivities = %v/%v", i, f.AmbientSensitivity(), f.DiffuseSensitivity())
		}
	}
}

func TestCubeSidesShareColour(t *testing.T) {
	faces := NewCube("cube", 1, 0, 0, 0).Faces()
	for i := 0; i < len(faces); i += 2 {
		if faces[i].Fill != faces[i+1].Fill {
			t.Errorf("triangles %d and %d of one side differ: %v %v", i, i+1, faces[i].Fill, faces[i+1].Fill)
		}
		if faces[i].Normal() != faces[i+1].Normal() {
			t.Errorf("triangles %d and %d are not coplanar", i, i+1)
		}
	}
}
