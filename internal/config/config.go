package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings.
type Config struct {
	Model     string `json:"model"`
	OutputDir string `json:"output_dir"`

	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Frames      int     `json:"frames"`
	FOV         float64 `json:"fov"`
	Distance    float64 `json:"distance"`
	Supersample int     `json:"supersample"`
	Format      string  `json:"format"`
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model       string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Frames      int
	FOV         float64
	Distance    float64
	Supersample int
	Workers     int
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Distance > 0 {
		c.Distance = flags.Distance
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = 512
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.FOV <= 0 {
		c.FOV = 90
	}
	if c.Distance <= 0 {
		c.Distance = 10
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
