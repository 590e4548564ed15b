package loader

import (
	"bufio"
	"context"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/smasonuk/painter3d"
)

type plyHeader struct {
	vertexCount, faceCount       int
	hasVertexColor, hasFaceColor bool
}

// ReadPLY reads an ASCII PLY stream with optional per-vertex or per-face
// RGB colour. Faces take their own colour, else the average of their
// vertices' colours, else the option colour.
func ReadPLY(ctx context.Context, r io.Reader, opts Options) (*painter3d.Entity3D, error) {
	scanner := bufio.NewScanner(r)
	hdr, err := readPLYHeader(scanner)
	if err != nil {
		return nil, err
	}

	b := newBuilder(ctx, opts)
	colors := make([]color.RGBA, 0, hdr.vertexCount)

	for i := 0; i < hdr.vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("vertex %d of %d: %w", i, hdr.vertexCount, ErrTruncated)
		}
		parts := strings.Fields(scanner.Text())
		want := 3
		if hdr.hasVertexColor {
			want = 6
		}
		if len(parts) < want {
			return nil, fmt.Errorf("vertex %d has %d values, want %d: %w", i, len(parts), want, painter3d.ErrMalformedInput)
		}
		xyz, err := parseFloats(parts[:3])
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		b.entity.AddPoint(painter3d.NewPoint3D(xyz[0], xyz[1], xyz[2]))

		c := b.opts.Color
		if hdr.hasVertexColor {
			if c, err = parseRGB(parts[3:6]); err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
		}
		colors = append(colors, c)
	}

	for i := 0; i < hdr.faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("face %d of %d: %w", i, hdr.faceCount, ErrTruncated)
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("face %d is empty: %w", i, painter3d.ErrMalformedInput)
		}
		n, err := strconv.Atoi(parts[0])
		if err != nil || n < 3 {
			return nil, fmt.Errorf("face %d vertex count %q: %w", i, parts[0], painter3d.ErrMalformedInput)
		}
		want := n + 1
		if hdr.hasFaceColor {
			want += 3
		}
		if len(parts) != want {
			return nil, fmt.Errorf("face %d has %d values, want %d: %w", i, len(parts), want, painter3d.ErrMalformedInput)
		}

		idx := make([]int, n)
		for j := range idx {
			if idx[j], err = strconv.Atoi(parts[j+1]); err != nil {
				return nil, fmt.Errorf("face %d index %q: %w", i, parts[j+1], painter3d.ErrMalformedInput)
			}
		}

		var faceColor color.RGBA
		switch {
		case hdr.hasFaceColor:
			if faceColor, err = parseRGB(parts[n+1 : n+4]); err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
		case hdr.hasVertexColor:
			faceColor = averageColor(colors, idx)
		default:
			faceColor = b.opts.Color
		}

		if err := b.polygon(idx, faceColor); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if err := b.step(i+1, hdr.faceCount); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}
	return b.entity, nil
}

func readPLYHeader(scanner *bufio.Scanner) (plyHeader, error) {
	var hdr plyHeader
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return hdr, fmt.Errorf("missing ply magic: %w", ErrUnknownFormat)
	}

	var element string
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return hdr, fmt.Errorf("ply format %q: %w", strings.Join(parts[1:], " "), ErrUnknownFormat)
			}
		case "element":
			if len(parts) != 3 {
				continue
			}
			element = parts[1]
			n, err := strconv.Atoi(parts[2])
			if err != nil || n < 0 {
				return hdr, fmt.Errorf("element %s count %q: %w", parts[1], parts[2], painter3d.ErrMalformedInput)
			}
			switch element {
			case "vertex":
				hdr.vertexCount = n
			case "face":
				hdr.faceCount = n
			}
		case "property":
			if len(parts) > 2 && (parts[2] == "red" || parts[2] == "diffuse_red") {
				switch element {
				case "vertex":
					hdr.hasVertexColor = true
				case "face":
					hdr.hasFaceColor = true
				}
			}
		case "end_header":
			return hdr, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return hdr, err
	}
	return hdr, fmt.Errorf("ply header not terminated: %w", ErrTruncated)
}

func parseFloats(parts []string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, s := range parts {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", s, painter3d.ErrMalformedInput)
		}
		out[i] = v
	}
	return out, nil
}

func parseRGB(parts []string) (color.RGBA, error) {
	var c [3]uint8
	for i, s := range parts {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour channel %q: %w", s, painter3d.ErrMalformedInput)
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, nil
}

// averageColor averages the colours of the given vertices. Out of range
// indices are skipped; AddFace reports them.
func averageColor(colors []color.RGBA, idx []int) color.RGBA {
	var r, g, b, n uint32
	for _, i := range idx {
		if i < 0 || i >= len(colors) {
			continue
		}
		r += uint32(colors[i].R)
		g += uint32(colors[i].G)
		b += uint32(colors[i].B)
		n++
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
