package obj

import (
	"math"
	"strings"
	"testing"
)

func TestParseTriangle(t *testing.T) {
	src := `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	soup, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	if len(soup) != len(want) {
		t.Fatalf("got %d floats, want %d", len(soup), len(want))
	}
	for i := range want {
		if soup[i] != want[i] {
			t.Fatalf("soup = %v, want %v", soup, want)
		}
	}
}

func TestParseQuadFanTriangulates(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	soup, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(soup) / 9; got != 2 {
		t.Fatalf("quad produced %d triangles, want 2", got)
	}
	// Second fan triangle is corners 1, 3, 4.
	second := soup[9:]
	want := []float64{0, 0, 0, 1, 1, 0, 0, 1, 0}
	for i := range want {
		if second[i] != want[i] {
			t.Fatalf("second triangle = %v, want %v", second, want)
		}
	}
}

func TestParseCornerFormats(t *testing.T) {
	// Slash-separated texture/normal indices and negative (relative)
	// indices are both legal corner spellings.
	src := `
v 0 0 0
v 2 0 0
v 0 2 0
f 1/5/2 2//7 -1
`
	soup, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(soup) != 9 {
		t.Fatalf("got %d floats, want 9", len(soup))
	}
	if soup[6] != 0 || soup[7] != 2 {
		t.Errorf("third corner = %v, want vertex 3", soup[6:9])
	}
}

func TestParseSkipsUnknownStatements(t *testing.T) {
	src := `
mtllib scene.mtl
o thing
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
vn 0 0 1
s off
f 1 2 3
`
	soup, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(soup) != 9 {
		t.Fatalf("got %d floats, want 9", len(soup))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad coordinate", "v 0 zero 0\n"},
		{"short vertex", "v 1 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"bad index token", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.src)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	soup := []float64{
		10, 10, 10,
		14, 10, 10,
		10, 12, 10,
	}
	Normalize(soup, 1)

	// Largest span (x: 10..14) maps to [-1, 1]; center moves to origin.
	var mn, mx [3]float64
	for k := 0; k < 3; k++ {
		mn[k], mx[k] = soup[k], soup[k]
	}
	for i := 0; i < len(soup); i += 3 {
		for k := 0; k < 3; k++ {
			mn[k] = math.Min(mn[k], soup[i+k])
			mx[k] = math.Max(mx[k], soup[i+k])
		}
	}
	if math.Abs(mn[0]+1) > 1e-12 || math.Abs(mx[0]-1) > 1e-12 {
		t.Errorf("x range [%v, %v], want [-1, 1]", mn[0], mx[0])
	}
	for k := 0; k < 3; k++ {
		if c := (mn[k] + mx[k]) / 2; math.Abs(c) > 1e-12 {
			t.Errorf("axis %d center = %v, want 0", k, c)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	Normalize(nil, 1) // must not panic
}
