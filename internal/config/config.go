// Package config handles chunk generation settings loading and management.
package config

// Config holds every tunable of the generation and meshing pipeline.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Terrain TerrainConfig `yaml:"terrain"`
	Caves   CaveConfig    `yaml:"caves"`
	Atlas   AtlasConfig   `yaml:"atlas"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// AtlasConfig describes the texture atlas layout.
type AtlasConfig struct {
	GridSize int `yaml:"grid_size"` // cells per atlas side
}

// BlocksConfig holds block type codes.
type BlocksConfig struct {
	Solid uint16 `yaml:"solid"` // type written for generated solid cells
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig holds optional artifact paths. Empty paths are skipped.
type OutputConfig struct {
	OBJ          string `yaml:"obj"`
	Snapshot     string `yaml:"snapshot"`
	Preview      string `yaml:"preview"`
	PreviewScale int    `yaml:"preview_scale"`
}

// Default returns a Config matching the reference 80x128x80 chunk.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  80,
			Height: 128,
			Depth:  80,
		},
		Terrain: TerrainConfig{
			Noise:     "perlin",
			Seed:      43,
			Frequency: 0.02,
			Amplitude: 20,
			Baseline:  96,
		},
		Caves: CaveConfig{
			Enabled:   true,
			Noise:     "perlin",
			Seed:      92,
			Frequency: 0.05,
			Band:      0.035,
		},
		Atlas: AtlasConfig{
			GridSize: 16,
		},
		Blocks: BlocksConfig{
			Solid: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			PreviewScale: 4,
		},
	}
}
