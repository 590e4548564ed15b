package painter3d

import "image/color"

// recordingSurface is a Surface that remembers what it was asked to draw.
type recordingSurface struct {
	ops     []string
	fills   []color.RGBA
	strokes []color.RGBA
	circles int
}

func (s *recordingSurface) FillPolygon(xp, yp []float32, clr color.RGBA) {
	s.ops = append(s.ops, "fill")
	s.fills = append(s.fills, clr)
}

func (s *recordingSurface) StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	s.ops = append(s.ops, "stroke")
	s.strokes = append(s.strokes, clr)
}

func (s *recordingSurface) FillCircle(x, y, radius float32, clr color.RGBA) {
	s.ops = append(s.ops, "circle")
	s.circles++
}
