package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"compute-rasterizer/internal/anim"
	"compute-rasterizer/internal/config"
	"compute-rasterizer/internal/obj"
	"compute-rasterizer/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	model := flag.String("model", "", "Path to OBJ model file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 512)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Number of orbit frames (default: 36)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 90)")
	distance := flag.Float64("distance", 0, "Camera distance from the model (default: 10)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 1)")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		Model:       *model,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Frames:      *frames,
		FOV:         *fov,
		Distance:    *distance,
		Supersample: *supersample,
		Workers:     *workers,
	})

	if cfg.Model == "" {
		fmt.Fprintln(os.Stderr, "Error: no model file. Use -model flag or config.json.")
		os.Exit(1)
	}

	soup, err := obj.Load(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}
	if len(soup) == 0 {
		fmt.Fprintln(os.Stderr, "Error: model contains no triangles.")
		os.Exit(1)
	}

	// Stage the scene so depths land in the shade rescale's range.
	obj.Normalize(soup, 1.0)

	fmt.Printf("Rendering %d frames of %s (%d triangles, %dx%d, %d workers)\n",
		cfg.Frames, cfg.Model, len(soup)/9, cfg.Width, cfg.Height, cfg.Workers)

	start := time.Now()
	results := anim.Run(anim.Config{
		Verts:       soup,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		FOV:         cfg.FOV,
		Distance:    cfg.Distance,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Workers:     cfg.Workers,
	})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %v\n", res.Frame, res.Err)
		}
	}

	fmt.Printf("Done: %d/%d frames in %.1fs → %s\n",
		len(results)-failed, len(results), time.Since(start).Seconds(), cfg.OutputDir)
	if failed > 0 {
		os.Exit(1)
	}
}
