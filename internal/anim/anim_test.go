package anim

import (
	"os"
	"testing"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		// One unit-scale triangle; staging matches what obj.Normalize
		// plus the default orbit distance produce.
		Verts: []float64{
			-1, -1, 0,
			1, -1, 0,
			0, 1, 0,
		},
		Width:     32,
		Height:    32,
		Frames:    3,
		FOV:       90,
		Distance:  10,
		OutputDir: t.TempDir(),
		Format:    "png",
		Workers:   2,
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	results := Run(cfg)

	if len(results) != cfg.Frames {
		t.Fatalf("got %d results, want %d", len(results), cfg.Frames)
	}
	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("frame %d: %v", res.Frame, res.Err)
		}
		info, err := os.Stat(res.Path)
		if err != nil {
			t.Fatalf("frame %d: %v", res.Frame, err)
		}
		if info.Size() == 0 {
			t.Errorf("frame %d: empty file", res.Frame)
		}
	}
}

func TestRunSupersampled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = 1
	cfg.Supersample = 2
	results := Run(cfg)

	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}
	if _, err := os.Stat(results[0].Path); err != nil {
		t.Fatal(err)
	}
}

func TestRunMalformedVerts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Verts = cfg.Verts[:8]
	results := Run(cfg)

	for _, res := range results {
		if res.Err == nil {
			t.Fatalf("frame %d: expected error for malformed vertex slice", res.Frame)
		}
	}
}

func TestRunZeroFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = 0
	if results := Run(cfg); len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
