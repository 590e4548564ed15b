// Command viewer opens a window showing STL, DXF and PLY models rendered
// with the painter's algorithm. Drag to rotate, scroll to zoom.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/smasonuk/painter3d"
	"github.com/smasonuk/painter3d/internal/config"
	"github.com/smasonuk/painter3d/internal/logger"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			log.Warn("could not save config", zap.Error(err))
		} else {
			log.Info("config saved", zap.String("path", config.DefaultPath()))
		}
	}

	scene := newScene(cfg)
	renderer := painter3d.NewRenderer()
	renderer.SetLogger(logger.Named("render"))
	renderer.SetScale(cfg.View.Scale)
	renderer.SetWireframe(cfg.View.Wireframe)
	renderer.SetOrthogonal(cfg.View.Orthogonal)
	renderer.SetStrokeWidth(cfg.View.StrokeWidth)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status := &loadStatus{}
	done := make(chan error, 1)
	go func() {
		done <- loadModels(ctx, cfg, scene, status, logger.Named("load"))
	}()

	if len(cfg.Load.Files) == 0 && cfg.Scene.Demo {
		scene.AddEntity(demoCube())
	}

	ebiten.SetWindowSize(cfg.View.Width, cfg.View.Height)
	ebiten.SetWindowTitle("painter3d")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := newGame(cfg, scene, renderer, status, log)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer stopped", zap.Error(err))
	}

	cancel()
	if err := <-done; err != nil && ctx.Err() == nil {
		log.Warn("model loading failed", zap.Error(err))
	}
}

func newScene(cfg *config.Config) *painter3d.Scene {
	s := painter3d.NewScene()
	s.SetLogger(logger.Named("scene"))
	s.SetAmbient(cfg.Scene.Ambient)
	s.SetCamera(painter3d.NewCamera(0, 0, cfg.Scene.CameraZ))
	l := cfg.Scene.Light
	s.SetLight(painter3d.NewPoint3D(l[0], l[1], l[2]))
	return s
}

// demoCube is shown when there is nothing to load, turned so three sides
// face the camera.
func demoCube() *painter3d.Entity3D {
	cube := painter3d.NewCube("cube", 200, 0, 0, 0)
	painter3d.RotateAxis(cube, painter3d.ROTY, 0.6)
	painter3d.RotateAxis(cube, painter3d.ROTX, 0.4)
	return cube
}
