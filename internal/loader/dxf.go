package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smasonuk/painter3d"
)

// ReadDXF reads the 3DFACE entities of an ASCII DXF stream. Every other
// entity is skipped. A 3DFACE whose fourth corner repeats the third is a
// triangle; otherwise it is split into two.
func ReadDXF(ctx context.Context, r io.Reader, opts Options) (*painter3d.Entity3D, error) {
	scanner := bufio.NewScanner(r)
	b := newBuilder(ctx, opts)

	var (
		corners [4][3]float64
		seen    [4]bool
		inFace  bool
		faces   int
		line    int
	)

	flush := func() error {
		if !inFace {
			return nil
		}
		inFace = false
		if !seen[0] || !seen[1] || !seen[2] {
			return fmt.Errorf("3DFACE %d is missing a corner: %w", faces, painter3d.ErrMalformedInput)
		}
		pts := make([]painter3d.Point3D, 0, 4)
		for i := 0; i < 3; i++ {
			pts = append(pts, painter3d.NewPoint3D(corners[i][0], corners[i][1], corners[i][2]))
		}
		if seen[3] && corners[3] != corners[2] {
			pts = append(pts, painter3d.NewPoint3D(corners[3][0], corners[3][1], corners[3][2]))
		}
		if err := b.points(pts, b.opts.Color); err != nil {
			return err
		}
		faces++
		return b.step(faces, 0)
	}

	for scanner.Scan() {
		line++
		code, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, fmt.Errorf("line %d: group code %q: %w", line, scanner.Text(), painter3d.ErrMalformedInput)
		}
		if !scanner.Scan() {
			return nil, fmt.Errorf("line %d: group %d has no value: %w", line, code, ErrTruncated)
		}
		line++
		value := strings.TrimSpace(scanner.Text())

		if code == 0 {
			if err := flush(); err != nil {
				return nil, err
			}
			if value == "3DFACE" {
				inFace = true
				seen = [4]bool{}
			}
			continue
		}
		if !inFace {
			continue
		}

		// corner i uses group codes 10+i, 20+i and 30+i
		axis, corner := code/10-1, code%10
		if code < 10 || code > 33 || corner > 3 {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: coordinate %q: %w", line, value, painter3d.ErrMalformedInput)
		}
		corners[corner][axis] = v
		if axis == 2 {
			seen[corner] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from DXF source: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return b.entity, nil
}
