package loader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/smasonuk/painter3d"
)

const (
	stlHeaderBytes = 80
	stlFacetBytes  = 50
)

// ReadSTL reads a binary or ASCII STL stream. Stored facet normals are
// ignored; normals always come from the vertex order.
func ReadSTL(ctx context.Context, r io.Reader, opts Options) (*painter3d.Entity3D, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrNotSTL)
	}
	if isASCIISTL(data) {
		return readASCIISTL(ctx, data, opts)
	}
	return readBinarySTL(ctx, data, opts)
}

// isASCIISTL reports whether data looks like an ASCII STL. Some binary
// exporters also start their header with "solid", so a binary file whose
// size matches its facet count wins.
func isASCIISTL(data []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return false
	}
	if len(data) >= stlHeaderBytes+4 {
		n := binary.LittleEndian.Uint32(data[stlHeaderBytes:])
		if int64(len(data)) == stlHeaderBytes+4+stlFacetBytes*int64(n) {
			return false
		}
	}
	return true
}

func readBinarySTL(ctx context.Context, data []byte, opts Options) (*painter3d.Entity3D, error) {
	if len(data) < stlHeaderBytes+4 {
		return nil, fmt.Errorf("binary STL header needs %d bytes, have %d: %w", stlHeaderBytes+4, len(data), ErrTruncated)
	}
	n := int(binary.LittleEndian.Uint32(data[stlHeaderBytes:]))
	body := data[stlHeaderBytes+4:]
	if int64(len(body)) < int64(n)*stlFacetBytes {
		return nil, fmt.Errorf("%d facets need %d bytes, have %d: %w", n, int64(n)*stlFacetBytes, len(body), ErrTruncated)
	}

	b := newBuilder(ctx, opts)
	pts := make([]painter3d.Point3D, 3)
	for i := 0; i < n; i++ {
		// normal (12 bytes), three vertices (36 bytes), attribute count (2 bytes)
		rec := body[i*stlFacetBytes : (i+1)*stlFacetBytes]
		for v := range pts {
			off := 12 + 12*v
			pts[v] = painter3d.NewPoint3D(float32At(rec, off), float32At(rec, off+4), float32At(rec, off+8))
		}
		if err := b.points(pts, b.opts.Color); err != nil {
			return nil, fmt.Errorf("facet %d: %w", i, err)
		}
		if err := b.step(i+1, n); err != nil {
			return nil, err
		}
	}
	return b.entity, nil
}

func float32At(b []byte, off int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b[off:])))
}

func readASCIISTL(ctx context.Context, data []byte, opts Options) (*painter3d.Entity3D, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Split(bufio.ScanWords)

	b := newBuilder(ctx, opts)
	var (
		loop   []painter3d.Point3D
		inLoop bool
		facets int
	)
	for sc.Scan() {
		switch strings.ToLower(sc.Text()) {
		case "outer":
			loop = loop[:0]
			inLoop = true
		case "vertex":
			if !inLoop {
				continue
			}
			p, err := scanPoint(sc)
			if err != nil {
				return nil, fmt.Errorf("facet %d: %w", facets, err)
			}
			loop = append(loop, p)
		case "endloop":
			if !inLoop || len(loop) < 3 {
				return nil, fmt.Errorf("facet %d has %d vertices: %w", facets, len(loop), ErrNotSTL)
			}
			if err := b.points(loop, b.opts.Color); err != nil {
				return nil, fmt.Errorf("facet %d: %w", facets, err)
			}
			inLoop = false
			facets++
			if err := b.step(facets, 0); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inLoop {
		return nil, fmt.Errorf("facet %d not closed: %w", facets, ErrTruncated)
	}
	if facets == 0 {
		return nil, fmt.Errorf("no facets: %w", ErrNotSTL)
	}
	return b.entity, nil
}

func scanPoint(sc *bufio.Scanner) (painter3d.Point3D, error) {
	var c [3]float64
	for i := range c {
		if !sc.Scan() {
			return painter3d.Point3D{}, fmt.Errorf("vertex coordinate %d: %w", i, ErrTruncated)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return painter3d.Point3D{}, fmt.Errorf("vertex coordinate %q: %w", sc.Text(), ErrNotSTL)
		}
		c[i] = v
	}
	return painter3d.NewPoint3D(c[0], c[1], c[2]), nil
}
