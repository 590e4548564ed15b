// Package loader reads triangle meshes from STL, DXF and PLY files and
// builds painter3d entities from them. Loading is independent of any scene;
// callers publish the finished entity with Scene.AddEntity.
package loader

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/smasonuk/painter3d"
)

var (
	ErrTruncated     = errors.New("loader: unexpected end of data")
	ErrNotSTL        = errors.New("loader: not an STL file")
	ErrUnknownFormat = errors.New("loader: unknown model format")
)

// DefaultColor is used for faces when neither the file nor the options
// supply one.
var DefaultColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}

// ProgressFunc is called after each face is read. total is 0 when the
// format does not declare a face count up front.
type ProgressFunc func(done, total int)

type Options struct {
	// Name of the entity. LoadFile defaults it to the file's base name.
	Name string
	// Color of faces that carry no colour of their own.
	Color color.RGBA
	// Reverse flips the winding of every face, for files whose normals point
	// inwards.
	Reverse  bool
	Progress ProgressFunc
}

// LoadFile opens path and picks a reader by its extension.
func LoadFile(ctx context.Context, path string, opts Options) (*painter3d.Entity3D, error) {
	var read func(context.Context, io.Reader, Options) (*painter3d.Entity3D, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		read = ReadSTL
	case ".dxf":
		read = ReadDXF
	case ".ply":
		read = ReadPLY
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model file %s: %w", path, err)
	}
	defer file.Close()

	if opts.Name == "" {
		opts.Name = filepath.Base(path)
	}
	e, err := read(ctx, file, opts)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return e, nil
}

// builder accumulates polygons into one entity.
type builder struct {
	ctx    context.Context
	entity *painter3d.Entity3D
	opts   Options
}

func newBuilder(ctx context.Context, opts Options) *builder {
	if opts.Color == (color.RGBA{}) {
		opts.Color = DefaultColor
	}
	return &builder{
		ctx:    ctx,
		entity: painter3d.NewEntity3D(opts.Name, opts.Color),
		opts:   opts,
	}
}

// polygon adds a convex polygon over existing point indices as a fan of
// triangles.
func (b *builder) polygon(idx []int, col color.RGBA) error {
	if len(idx) < 3 {
		return fmt.Errorf("polygon with %d points: %w", len(idx), painter3d.ErrMalformedInput)
	}
	for i := 1; i+1 < len(idx); i++ {
		i0, i1, i2 := idx[0], idx[i], idx[i+1]
		if b.opts.Reverse {
			i1, i2 = i2, i1
		}
		f, err := b.entity.AddFace(i0, i1, i2)
		if err != nil {
			return err
		}
		f.SetColor(col)
		f.SetBorderColor(col)
		f.SetSensitivity(1, 1)
	}
	return nil
}

// points adds pts to the arena and builds one polygon over them.
func (b *builder) points(pts []painter3d.Point3D, col color.RGBA) error {
	first := b.entity.AddPoints(pts...)
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = first + i
	}
	return b.polygon(idx, col)
}

// step checks for cancellation and reports progress.
func (b *builder) step(done, total int) error {
	if err := b.ctx.Err(); err != nil {
		return err
	}
	if b.opts.Progress != nil {
		b.opts.Progress(done, total)
	}
	return nil
}
