package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/smasonuk/painter3d"
	"github.com/smasonuk/painter3d/ebitendraw"
	"github.com/smasonuk/painter3d/internal/config"
)

// keyTurn is the rotation applied per frame while an arrow key is held.
const keyTurn = 0.03

type Game struct {
	cfg      *config.Config
	scene    *painter3d.Scene
	renderer *painter3d.Renderer
	status   *loadStatus
	log      *zap.Logger

	dragging     bool
	lastX, lastY int
	width        int
	height       int

	lastFrame *painter3d.Frame
	lastErr   string
}

func newGame(cfg *config.Config, scene *painter3d.Scene, r *painter3d.Renderer, status *loadStatus, log *zap.Logger) *Game {
	return &Game{
		cfg:      cfg,
		scene:    scene,
		renderer: r,
		status:   status,
		log:      log,
		width:    cfg.View.Width,
		height:   cfg.View.Height,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		dx, dy := x-g.lastX, y-g.lastY
		if dx != 0 || dy != 0 {
			speed := g.cfg.View.DragSpeed
			// screen y grows downwards
			painter3d.RotateScene(g.scene, float64(dy)*speed, float64(dx)*speed)
		}
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.renderer.ZoomBy(-wy)
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		painter3d.RotateSceneAxis(g.scene, painter3d.ROTZ, keyTurn)
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		painter3d.RotateSceneAxis(g.scene, painter3d.ROTZ, -keyTurn)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.renderer.SetWireframe(!g.renderer.Wireframe())
		g.log.Debug("wireframe toggled", zap.Bool("on", g.renderer.Wireframe()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.renderer.SetOrthogonal(!g.renderer.Orthogonal())
		g.log.Debug("orthogonal toggled", zap.Bool("on", g.renderer.Orthogonal()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		// put the light back in front of the scene
		painter3d.MoveLight(g.scene, painter3d.NewPoint3D(0, 0, g.scene.Camera().GetPosition().Z/2))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.scene.RemoveAll()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	fr, err := g.renderer.Render(g.scene, g.width, g.height)
	if err != nil {
		if msg := err.Error(); msg != g.lastErr {
			g.log.Debug("frame incomplete", zap.Error(err))
			g.lastErr = msg
		}
	}
	surface := ebitendraw.NewSurface(screen)
	surface.AntiAlias = g.cfg.View.AntiAlias
	fr.Draw(surface)
	g.lastFrame = fr

	ebitenutil.DebugPrint(screen, g.statusLine())
}

func (g *Game) statusLine() string {
	mode := "solid"
	if g.renderer.Wireframe() {
		mode = "wireframe"
	}
	proj := "perspective"
	if g.renderer.Orthogonal() {
		proj = "orthogonal"
	}
	line := fmt.Sprintf("FPS: %0.1f  scale: %.1f  %s %s  drawn: %d culled: %d",
		ebiten.ActualFPS(), g.renderer.Scale(), mode, proj, g.lastFrame.Drawn, g.lastFrame.Culled)
	if n := g.status.pending.Load(); n > 0 {
		line += fmt.Sprintf("\nloading %d file(s), %d faces read", n, g.status.faces.Load())
	}
	if n := g.status.failed.Load(); n > 0 {
		line += fmt.Sprintf("\n%d file(s) failed to load, see log", n)
	}
	return line
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
