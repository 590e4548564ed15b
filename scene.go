package painter3d

import (
	"sync"

	"go.uber.org/zap"
)

const (
	DefaultAmbient = 0.3
	DefaultLightZ  = 800
	DefaultCameraZ = 800
)

// Scene holds the entities, the light, the camera and the ZBuffer that
// mirrors the entities' faces. Entity additions and removals hold the scene
// lock, as does a render, so a frame never sees half an entity.
type Scene struct {
	mu sync.Mutex

	entities []*Entity3D
	light    Point3D
	ambient  float64
	camera   *Camera
	buffer   *ZBuffer
	log      *zap.Logger
}

// NewScene creates an empty scene with the default light, ambient level and
// camera.
func NewScene() *Scene {
	return &Scene{
		light:   NewPoint3D(0, 0, DefaultLightZ),
		ambient: DefaultAmbient,
		camera:  NewCamera(0, 0, DefaultCameraZ),
		buffer:  NewZBuffer(),
		log:     zap.NewNop(),
	}
}

func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// AddEntity publishes e to the scene and its ZBuffer in one step. Adding an
// entity that is already in the scene does nothing and returns false.
func (s *Scene) AddEntity(e *Entity3D) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.entities {
		if other == e {
			s.log.Debug("entity already in scene", zap.String("entity", e.Name))
			return false
		}
	}

	s.entities = append(s.entities, e)
	s.buffer.AddEntity(e)
	s.log.Debug("entity added",
		zap.String("entity", e.Name),
		zap.Int("faces", e.NumFaces()),
		zap.Int("bufferFaces", s.buffer.Len()))
	return true
}

// RemoveEntity removes e and exactly its faces. It reports whether e was in
// the scene.
func (s *Scene) RemoveEntity(e *Entity3D) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, other := range s.entities {
		if other != e {
			continue
		}
		s.entities = append(s.entities[:i], s.entities[i+1:]...)
		s.buffer.RemoveEntity(e)
		s.log.Debug("entity removed", zap.String("entity", e.Name), zap.Int("bufferFaces", s.buffer.Len()))
		return true
	}
	return false
}

func (s *Scene) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities = nil
	s.buffer.Clear()
	s.log.Debug("scene cleared")
}

// Entities returns a snapshot of the scene's entities.
func (s *Scene) Entities() []*Entity3D {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Entity3D, len(s.entities))
	copy(out, s.entities)
	return out
}

// EntityByName returns the first entity called name.
func (s *Scene) EntityByName(name string) (*Entity3D, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Do runs fn while holding the scene lock. Use it to transform entities
// from a goroutine other than the one rendering.
func (s *Scene) Do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Scene) Light() Point3D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.light
}

func (s *Scene) SetLight(p Point3D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.light = p
}

func (s *Scene) Ambient() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ambient
}

func (s *Scene) SetAmbient(a float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambient = a
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

func (s *Scene) SetCamera(c *Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = c
}

// Buffer returns the scene's ZBuffer. Callers must not add or remove
// entities through it directly.
func (s *Scene) Buffer() *ZBuffer {
	return s.buffer
}
