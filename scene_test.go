package painter3d

import (
	"image/color"
	"sync"
	"testing"
)

func TestSceneDefaults(t *testing.T) {
	s := NewScene()
	if got := s.Light(); got != NewPoint3D(0, 0, DefaultLightZ) {
		t.Errorf("Light() = %v, want (0, 0, %v)", got, DefaultLightZ)
	}
	if s.Ambient() != DefaultAmbient {
		t.Errorf("Ambient() = %v, want %v", s.Ambient(), DefaultAmbient)
	}
	if got := s.Camera().GetPosition(); got != NewPoint3D(0, 0, DefaultCameraZ) {
		t.Errorf("camera at %v, want (0, 0, %v)", got, DefaultCameraZ)
	}
	if s.Buffer().Len() != 0 {
		t.Errorf("new scene has %d buffered faces", s.Buffer().Len())
	}
}

func TestSceneBufferMirrorsEntities(t *testing.T) {
	s := NewScene()
	a := NewCube("a", 2, 0, 0, 0)
	// same coordinates, different entity
	b := NewCube("b", 2, 0, 0, 0)
	c, _ := singleTriangle("c", 0, 0, 0, color.RGBA{A: 255})

	s.AddEntity(a)
	s.AddEntity(b)
	s.AddEntity(c)
	if got := s.Buffer().Len(); got != 25 {
		t.Fatalf("buffer has %d faces, want 25", got)
	}

	if !s.RemoveEntity(a) {
		t.Fatal("RemoveEntity(a) = false, want true")
	}
	if s.RemoveEntity(a) {
		t.Error("second RemoveEntity(a) = true, want false")
	}
	if got := s.Buffer().Len(); got != 13 {
		t.Fatalf("buffer has %d faces after removal, want 13", got)
	}
	for _, f := range s.Buffer().SortedFaces() {
		if f.Entity() == a {
			t.Fatal("face of removed entity still buffered")
		}
	}

	entities := s.Entities()
	if len(entities) != 2 || entities[0] != b || entities[1] != c {
		t.Errorf("Entities() = %v, want [b c]", entities)
	}
	if e, ok := s.EntityByName("b"); !ok || e != b {
		t.Errorf("EntityByName(b) = %v, %v", e, ok)
	}
	if _, ok := s.EntityByName("a"); ok {
		t.Error("EntityByName(a) found a removed entity")
	}

	s.RemoveAll()
	if s.Buffer().Len() != 0 || len(s.Entities()) != 0 {
		t.Errorf("RemoveAll left %d faces and %d entities", s.Buffer().Len(), len(s.Entities()))
	}
}

func TestSceneRemoveDoesNotRemoveStrangers(t *testing.T) {
	s := NewScene()
	s.AddEntity(NewCube("in", 1, 0, 0, 0))
	if s.RemoveEntity(NewCube("in", 1, 0, 0, 0)) {
		t.Error("RemoveEntity of an entity never added = true")
	}
	if s.Buffer().Len() != 12 {
		t.Errorf("buffer has %d faces, want 12", s.Buffer().Len())
	}
}

func TestSceneConcurrentAddDuringRender(t *testing.T) {
	s := NewScene()
	s.AddEntity(NewCube("base", 10, 0, 0, 0))
	r := NewRenderer()

	const loaders = 8
	var wg sync.WaitGroup
	for i := 0; i < loaders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cube := NewCube("loaded", 5, float64(i*20), 0, 0)
			RotateAxis(cube, ROTY, 0.3)
			s.AddEntity(cube)
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for rendering := true; rendering; {
		select {
		case <-done:
			rendering = false
		default:
		}
		fr, err := r.Render(s, 320, 240)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		// whole cubes only
		if total := fr.Drawn + fr.Culled; total%12 != 0 {
			t.Fatalf("frame saw %d faces, not a whole number of cubes", total)
		}
	}

	if got := s.Buffer().Len(); got != 12*(loaders+1) {
		t.Errorf("buffer has %d faces, want %d", got, 12*(loaders+1))
	}
}

func TestSceneDo(t *testing.T) {
	s := NewScene()
	cube := NewCube("c", 2, 0, 0, 0)
	s.AddEntity(cube)

	s.Do(func() {
		Translate(cube, NewVector3D(0, 0, 5))
	})
	for _, f := range cube.Faces() {
		if f.ZAvg() < 4 || f.ZAvg() > 6 {
			t.Errorf("face zavg %v not moved with the entity", f.ZAvg())
		}
	}
}

func TestSceneAddEntityTwice(t *testing.T) {
	s := NewScene()
	c := NewCube("c", 1, 0, 0, 0)

	if !s.AddEntity(c) {
		t.Fatal("first AddEntity() = false, want true")
	}
	if s.AddEntity(c) {
		t.Error("second AddEntity() = true, want false")
	}
	if len(s.Entities()) != 1 || s.Buffer().Len() != 12 {
		t.Fatalf("after double add: %d entities, %d faces, want 1 and 12", len(s.Entities()), s.Buffer().Len())
	}

	s.RemoveEntity(c)
	if len(s.Entities()) != 0 || s.Buffer().Len() != 0 {
		t.Errorf("after remove: %d entities, %d faces, want 0 and 0", len(s.Entities()), s.Buffer().Len())
	}
}
