package main

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smasonuk/painter3d"
	"github.com/smasonuk/painter3d/internal/config"
	"github.com/smasonuk/painter3d/internal/loader"
)

const maxParallelLoads = 4

// loadStatus is read by the game loop while loaders update it.
type loadStatus struct {
	pending atomic.Int32
	faces   atomic.Int64
	failed  atomic.Int32
}

// loadModels loads every configured file in the background and adds each
// entity to the scene as soon as it is complete. A file that fails to load
// is logged and skipped; the combined error is returned at the end.
func loadModels(ctx context.Context, cfg *config.Config, scene *painter3d.Scene, status *loadStatus, log *zap.Logger) error {
	col, err := cfg.Load.RGBA()
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	status.pending.Add(int32(len(cfg.Load.Files)))

	for _, path := range cfg.Load.Files {
		path := path // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			defer status.pending.Add(-1)

			opts := loader.Options{
				Color:   col,
				Reverse: cfg.Load.Reverse,
				Progress: func(done, total int) {
					status.faces.Add(1)
				},
			}
			e, err := loader.LoadFile(ctx, path, opts)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				status.failed.Add(1)
				log.Warn("could not load model", zap.String("path", path), zap.Error(err))
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
				return nil
			}

			prepareEntity(e, cfg.Load)
			scene.AddEntity(e)
			log.Info("model loaded",
				zap.String("entity", e.Name),
				zap.Int("faces", e.NumFaces()),
				zap.Int("points", e.NumPoints()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return errs
}

// prepareEntity centres and resizes a freshly loaded entity before it is
// visible to the renderer.
func prepareEntity(e *painter3d.Entity3D, opts config.LoadConfig) {
	if opts.Centre {
		e.Centre()
	}
	if opts.Fit <= 0 {
		return
	}
	x, y, z := e.Extents()
	largest := max(x, y, z)
	if largest <= 0 {
		return
	}
	k := opts.Fit / largest
	painter3d.Scale(e, painter3d.NewVector3D(k, k, k))
}
