package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSeed        = flag.Int64("seed", 0, "Terrain noise seed (caves use seed+49)")
	flagNoCaves     = flag.Bool("no-caves", false, "Disable cave carving")
	flagWidth       = flag.Int("width", 0, "Chunk width")
	flagHeight      = flag.Int("height", 0, "Chunk height")
	flagDepth       = flag.Int("depth", 0, "Chunk depth")
	flagOBJ         = flag.String("obj", "", "Write the render mesh as Wavefront OBJ")
	flagSnapshot    = flag.String("snapshot", "", "Write a compressed voxel snapshot")
	flagPreview     = flag.String("preview", "", "Write a heightmap preview PNG")
	flagPreviewSize = flag.Int("preview-scale", 0, "Pixels per column in the preview")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
		cfg.Caves.Seed = *flagSeed + 49
	}
	if *flagNoCaves {
		cfg.Caves.Enabled = false
	}
	if *flagWidth > 0 {
		cfg.World.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.World.Height = *flagHeight
	}
	if *flagDepth > 0 {
		cfg.World.Depth = *flagDepth
	}
	if *flagOBJ != "" {
		cfg.Output.OBJ = *flagOBJ
	}
	if *flagSnapshot != "" {
		cfg.Output.Snapshot = *flagSnapshot
	}
	if *flagPreview != "" {
		cfg.Output.Preview = *flagPreview
	}
	if *flagPreviewSize > 0 {
		cfg.Output.PreviewScale = *flagPreviewSize
	}
}
