// Package obj loads Wavefront OBJ geometry as the flat triangle soup
// the rasterizer consumes: 9 floats per triangle, vertices repeated, no
// index buffer.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"compute-rasterizer/internal/mathutil"
)

// Load reads an OBJ file and returns its triangles as a flat float
// slice. Only v and f statements are honored; texture coordinates,
// normals, groups and materials are skipped. Faces with more than three
// corners are fan-triangulated.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	soup, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("obj: parse %s: %w", path, err)
	}
	return soup, nil
}

// Parse reads OBJ statements from r and returns the flat triangle soup.
func Parse(r io.Reader) ([]float64, error) {
	var verts []mathutil.Vec3
	var soup []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var v mathutil.Vec3
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", lineNo, fields[i+1], err)
				}
				v[i] = c
			}
			verts = append(verts, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := resolveIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, i)
			}
			// Fan triangulation around the first corner.
			for i := 2; i < len(idx); i++ {
				for _, vi := range []int{idx[0], idx[i-1], idx[i]} {
					v := verts[vi]
					soup = append(soup, v[0], v[1], v[2])
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return soup, nil
}

// resolveIndex turns a face corner token ("7", "7/1", "7//3", "-1")
// into a zero-based vertex index. OBJ indices are 1-based; negative
// indices count back from the most recent vertex.
func resolveIndex(tok string, nverts int) (int, error) {
	if j := strings.IndexByte(tok, '/'); j >= 0 {
		tok = tok[:j]
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", tok, err)
	}
	switch {
	case i > 0 && i <= nverts:
		return i - 1, nil
	case i < 0 && -i <= nverts:
		return nverts + i, nil
	default:
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", i, nverts)
	}
}

// Normalize recenters the soup on the origin and scales it so the
// largest half-extent equals radius, in place. The rasterizer's fixed
// shade rescale expects scenes staged this way (unit-ish model, camera
// roughly 10 units back).
func Normalize(soup []float64, radius float64) {
	if len(soup) == 0 {
		return
	}

	mn := mathutil.Vec3{soup[0], soup[1], soup[2]}
	mx := mn
	for i := 0; i < len(soup); i += 3 {
		for k := 0; k < 3; k++ {
			mn[k] = min(mn[k], soup[i+k])
			mx[k] = max(mx[k], soup[i+k])
		}
	}

	center := mn.Add(mx).Scale(0.5)
	span := max(mx[0]-mn[0], mx[1]-mn[1], mx[2]-mn[2], 1e-9)
	scale := 2 * radius / span

	for i := 0; i < len(soup); i += 3 {
		v := mathutil.Vec3{soup[i], soup[i+1], soup[i+2]}.Sub(center).Scale(scale)
		soup[i], soup[i+1], soup[i+2] = v[0], v[1], v[2]
	}
}
