package painter3d

import "image/color"

type CommandKind int

const (
	CommandFill CommandKind = iota
	CommandStroke
	CommandMarker
)

func (k CommandKind) String() string {
	switch k {
	case CommandFill:
		return "fill"
	case CommandStroke:
		return "stroke"
	case CommandMarker:
		return "marker"
	}
	return "unknown"
}

// DrawCommand is one 2D primitive in absolute screen coordinates. Polygon
// commands use Xs/Ys; markers use X, Y and Radius.
type DrawCommand struct {
	Kind  CommandKind
	Xs    []float32
	Ys    []float32
	X, Y  float32
	Color color.RGBA

	Width  float32
	Radius float32

	// Face is the source face of a polygon command, nil for markers.
	Face *Face
}

// Frame is the ordered output of one render. Later commands overpaint
// earlier ones.
type Frame struct {
	Width, Height int
	Commands      []DrawCommand

	Drawn  int
	Culled int
}

// Surface is anything that can fill and stroke polygons and fill circles.
type Surface interface {
	FillPolygon(xs, ys []float32, clr color.RGBA)
	StrokePolygon(xs, ys []float32, strokeWidth float32, clr color.RGBA)
	FillCircle(x, y, radius float32, clr color.RGBA)
}

// Draw replays the frame onto s in order.
func (fr *Frame) Draw(s Surface) {
	for i := range fr.Commands {
		c := &fr.Commands[i]
		switch c.Kind {
		case CommandFill:
			s.FillPolygon(c.Xs, c.Ys, c.Color)
		case CommandStroke:
			s.StrokePolygon(c.Xs, c.Ys, c.Width, c.Color)
		case CommandMarker:
			s.FillCircle(c.X, c.Y, c.Radius, c.Color)
		}
	}
}
