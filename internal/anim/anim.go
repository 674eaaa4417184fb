// Package anim drives a turntable animation: one rasterized frame per
// orbit step, encoded to disk as an image sequence.
package anim

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"compute-rasterizer/internal/export"
	"compute-rasterizer/internal/postprocess"
	"compute-rasterizer/internal/raster"
	"compute-rasterizer/internal/viewmatrix"
)

// Config holds the shared setup for one animation run.
type Config struct {
	Verts       []float64 // flat triangle soup, 9 floats per triangle
	Width       int
	Height      int
	Supersample int
	Frames      int
	FOV         float64 // vertical field of view, degrees
	Distance    float64 // camera distance from the model center
	OutputDir   string
	Format      string // webp, tga or png
	Workers     int
}

// Result holds the outcome of one frame.
type Result struct {
	Frame int
	Path  string
	Err   error
}

// Run renders cfg.Frames frames of a full orbit and encodes each one as
// OutputDir/frame_NNNN.<format>. Rasterization is parallel inside a
// frame; encoding runs on background workers so frame K+1 can rasterize
// while frame K is written out. The pixel buffer is reused across
// frames, which is safe because each frame's pixels are copied out
// before the next render starts.
func Run(cfg Config) []Result {
	results := make([]Result, cfg.Frames)
	if cfg.Frames == 0 {
		return results
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Err: err}
		}
		return results
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	renderW, renderH := cfg.Width*ss, cfg.Height*ss
	r := raster.NewRenderer(renderW, renderH, cfg.Workers)
	pb := raster.NewPixelBuffer(renderW, renderH)
	aspect := float64(cfg.Width) / float64(cfg.Height)

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, cfg.Frames, rate)
				}
			}
		}
	}()

	// Encode workers
	type job struct {
		frame int
		img   *image.NRGBA
	}
	encodeWorkers := 2
	jobs := make(chan job, encodeWorkers)
	var wg sync.WaitGroup
	for w := 0; w < encodeWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				img := j.img
				if ss > 1 {
					img = postprocess.Downsample(img, cfg.Width, cfg.Height)
				}
				path := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.%s", j.frame, cfg.Format))
				err := export.Save(path, img)
				results[j.frame] = Result{Frame: j.frame, Path: path, Err: err}
				processed.Add(1)
			}
		}()
	}

	for frame := 0; frame < cfg.Frames; frame++ {
		angle := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
		mvp := viewmatrix.Orbit(angle, cfg.Distance, cfg.FOV, aspect)

		if err := r.RenderFrame(cfg.Verts, mvp, pb); err != nil {
			// Malformed input fails every frame identically; stop here.
			for i := frame; i < cfg.Frames; i++ {
				results[i] = Result{Frame: i, Err: err}
			}
			break
		}
		jobs <- job{frame: frame, img: export.ToNRGBA(pb)}
	}
	close(jobs)
	wg.Wait()
	close(done)

	return results
}
