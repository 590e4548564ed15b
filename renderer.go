package painter3d

import (
	"fmt"
	"image/color"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// MinScale is the smallest zoom the renderer accepts.
	MinScale = 1.0

	MarkerRadius = 3

	// coincidentTolerance is how close a point may get to the camera's Z
	// plane before the perspective divide is refused.
	coincidentTolerance = 1e-9
)

// LightMarkerColor is the colour of the light position marker.
var LightMarkerColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// Renderer turns a Scene into a Frame of draw commands. Wireframe and
// orthogonal are independent toggles that may be flipped between frames.
type Renderer struct {
	scalefactor float64
	wireframe   bool
	orthogonal  bool
	strokeWidth float32
	log         *zap.Logger
}

func NewRenderer() *Renderer {
	return &Renderer{
		scalefactor: 1,
		strokeWidth: 1,
		log:         zap.NewNop(),
	}
}

func (r *Renderer) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l
}

func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
}

func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

func (r *Renderer) SetOrthogonal(on bool) {
	r.orthogonal = on
}

func (r *Renderer) Orthogonal() bool {
	return r.orthogonal
}

// SetScale sets the zoom factor, clamped to MinScale.
func (r *Renderer) SetScale(factor float64) {
	if factor < MinScale || math.IsNaN(factor) {
		factor = MinScale
	}
	r.scalefactor = factor
}

func (r *Renderer) Scale() float64 {
	return r.scalefactor
}

// ZoomBy applies mouse wheel clicks; positive clicks zoom out.
func (r *Renderer) ZoomBy(clicks float64) {
	r.SetScale(r.scalefactor - clicks)
}

func (r *Renderer) SetStrokeWidth(w float32) {
	if w <= 0 {
		w = 1
	}
	r.strokeWidth = w
}

// Project maps a world point onto the projection plane, before the viewport
// transform. In orthogonal mode X and Y pass through unchanged.
func (r *Renderer) Project(p Point3D, cam *Camera) (float64, float64, error) {
	if r.orthogonal {
		return p.X, p.Y, nil
	}
	camZ := cam.GetPosition().Z
	denom := camZ - p.Z
	if math.Abs(denom) < coincidentTolerance {
		return 0, 0, fmt.Errorf("project %v with camera at z=%g: %w", p, camZ, ErrCameraCoincident)
	}
	ratio := camZ / denom
	return ratio * p.X, ratio * p.Y, nil
}

// FaceVisible reports whether f survives back-face culling. A face exactly
// edge-on (dot product 0) counts as facing away.
func (r *Renderer) FaceVisible(f *Face, cam *Camera) bool {
	normal := f.Normal()
	if r.orthogonal {
		return normal.Z > 0
	}
	toCamera := VectorBetween(f.Point(0), cam.GetPosition())
	return Dot(normal, toCamera) > 0
}

// Shade returns the lit fill and border colours of f.
func Shade(f *Face, light Point3D, ambient float64) (fill, border color.RGBA) {
	diffuse := diffuseTerm(f, light)
	fill = shadeColor(f.Fill, ambient, diffuse, f.ambientSensitivity, f.diffuseSensitivity)
	fill.A = 255
	border = shadeColor(f.Border, ambient, diffuse, f.ambientSensitivity, f.diffuseSensitivity)
	return fill, border
}

// diffuseTerm is the cosine between the face normal and the direction to
// the light, floored at 0. Degenerate faces and a light sitting on the face's
// first point get no diffuse light.
func diffuseTerm(f *Face, light Point3D) float64 {
	normal := f.Normal()
	if normal.IsZero() {
		return 0
	}
	toLight, err := VectorBetween(f.Point(0), light).Unit()
	if err != nil {
		return 0
	}
	return math.Max(0, Dot(normal, toLight))
}

func shadeColor(base color.RGBA, ambient, diffuse, ambSens, diffSens float64) color.RGBA {
	channel := func(c uint8) uint8 {
		v := ambient*float64(c)*ambSens + diffuse*float64(c)*diffSens
		return uint8(clamp(int(v), 0, 255))
	}
	return color.RGBA{
		R: channel(base.R),
		G: channel(base.G),
		B: channel(base.B),
		A: base.A,
	}
}

// Render sorts the scene, culls, projects and shades every face and returns
// the resulting frame. Faces that cannot be projected are left out and
// reported in the returned error; the frame is still usable.
func (r *Renderer) Render(s *Scene, width, height int) (*Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := &Frame{Width: width, Height: height}
	cam := s.camera
	cx, cy := float64(width)/2, float64(height)/2

	toScreen := func(x, y float64) (float32, float32) {
		return float32(cx + r.scalefactor*x), float32(cy - r.scalefactor*y)
	}

	s.buffer.Sort()
	faces := s.buffer.SortedFaces()
	frame.Commands = make([]DrawCommand, 0, 2*len(faces)+1)

	var errs error
	for n := range faces {
		f := faces[r.drawIndex(n, len(faces), cam)]

		if !r.wireframe && !r.FaceVisible(f, cam) {
			frame.Culled++
			continue
		}

		pts := f.Points()
		xs := make([]float32, len(pts))
		ys := make([]float32, len(pts))
		projected := true
		for i, p := range pts {
			px, py, err := r.Project(p, cam)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("entity %q: %w", f.owner.Name, err))
				projected = false
				break
			}
			xs[i], ys[i] = toScreen(px, py)
		}
		if !projected {
			continue
		}

		fill, border := Shade(f, s.light, s.ambient)
		if !r.wireframe {
			frame.Commands = append(frame.Commands, DrawCommand{
				Kind:  CommandFill,
				Xs:    xs,
				Ys:    ys,
				Color: fill,
				Face:  f,
			})
		}
		frame.Commands = append(frame.Commands, DrawCommand{
			Kind:  CommandStroke,
			Xs:    xs,
			Ys:    ys,
			Color: border,
			Width: r.strokeWidth,
			Face:  f,
		})
		frame.Drawn++
	}

	if lx, ly, err := r.Project(s.light, cam); err == nil {
		x, y := toScreen(lx, ly)
		frame.Commands = append(frame.Commands, DrawCommand{
			Kind:   CommandMarker,
			X:      x,
			Y:      y,
			Radius: MarkerRadius,
			Color:  LightMarkerColor,
		})
	} else {
		r.log.Debug("light marker skipped", zap.Error(err))
	}

	r.log.Debug("frame rendered",
		zap.Int("faces", len(faces)),
		zap.Int("drawn", frame.Drawn),
		zap.Int("culled", frame.Culled),
		zap.Bool("wireframe", r.wireframe),
		zap.Bool("orthogonal", r.orthogonal))

	return frame, errs
}

// drawIndex maps the n-th face to draw onto the ZBuffer order, which is
// largest Z first. A camera on the +Z side looks down -Z, so its farthest
// faces are at the end of that order. Orthogonal culling always views from
// +Z, whatever the camera position.
func (r *Renderer) drawIndex(n, count int, cam *Camera) int {
	if r.orthogonal || cam.GetPosition().Z >= 0 {
		return count - 1 - n
	}
	return n
}
