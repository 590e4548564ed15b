// Package ebitendraw replays painter3d frames onto ebiten images.
package ebitendraw

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/painter3d"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

var _ painter3d.Surface = (*Surface)(nil)

// Surface draws frames onto an ebiten image.
type Surface struct {
	Screen    *ebiten.Image
	AntiAlias bool
}

func NewSurface(screen *ebiten.Image) *Surface {
	return &Surface{Screen: screen, AntiAlias: true}
}

func colorComponents(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0,
		float32(clr.G) / 255.0,
		float32(clr.B) / 255.0,
		float32(clr.A) / 255.0
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *Surface) FillPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr, cg, cb, ca := colorComponents(clr)
	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: s.AntiAlias}
	s.Screen.DrawTriangles(vertices, indices, whiteSub, op)
}

// StrokePolygon draws the closed outline of a polygon.
func (s *Surface) StrokePolygon(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinBevel,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr, cg, cb, ca := colorComponents(clr)
	// SrcX/SrcY pick the solid white texel
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	s.Screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: s.AntiAlias})
}

func (s *Surface) FillCircle(x, y, radius float32, clr color.RGBA) {
	vector.DrawFilledCircle(s.Screen, x, y, radius, clr, s.AntiAlias)
}
