package config

import (
	"errors"
	"fmt"
)

// WorldConfig holds the chunk dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
}

// TerrainConfig shapes the height field.
type TerrainConfig struct {
	Noise     string  `yaml:"noise"` // perlin or value
	Seed      int64   `yaml:"seed"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Baseline  float64 `yaml:"baseline"`
}

// CaveConfig controls cave carving.
type CaveConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Noise     string  `yaml:"noise"`
	Seed      int64   `yaml:"seed"`
	Frequency float64 `yaml:"frequency"`
	Band      float64 `yaml:"band"` // carve where |noise| < band
}

func validNoise(kind string) bool {
	return kind == "" || kind == "perlin" || kind == "value"
}

// Validate reports every setting the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 || c.World.Depth <= 0 {
		errs = append(errs, fmt.Errorf("world dimensions must be positive, got %dx%dx%d",
			c.World.Width, c.World.Height, c.World.Depth))
	}
	if !validNoise(c.Terrain.Noise) {
		errs = append(errs, fmt.Errorf("terrain.noise: unknown kind %q", c.Terrain.Noise))
	}
	if !validNoise(c.Caves.Noise) {
		errs = append(errs, fmt.Errorf("caves.noise: unknown kind %q", c.Caves.Noise))
	}
	if c.Terrain.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("terrain.frequency must be positive, got %g", c.Terrain.Frequency))
	}
	if c.Caves.Enabled && c.Caves.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("caves.frequency must be positive, got %g", c.Caves.Frequency))
	}
	if c.Caves.Band < 0 {
		errs = append(errs, fmt.Errorf("caves.band must not be negative, got %g", c.Caves.Band))
	}
	if c.Atlas.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("atlas.grid_size must be positive, got %d", c.Atlas.GridSize))
	}
	if c.Blocks.Solid == 0 {
		errs = append(errs, errors.New("blocks.solid must not be 0 (air)"))
	}
	if c.Output.Preview != "" && c.Output.PreviewScale <= 0 {
		errs = append(errs, fmt.Errorf("output.preview_scale must be positive, got %d", c.Output.PreviewScale))
	}
	return errors.Join(errs...)
}
