package world

// GeneratorSettings holds the terrain shaping constants.
type GeneratorSettings struct {
	Amplitude  float64   // height noise scale in blocks
	Baseline   float64   // mean surface height
	CaveBand   float64   // half-width of the carve band around zero
	SolidBlock BlockType // type written for every solid cell
	Caves      bool
}

// DefaultGeneratorSettings matches the reference 80x128x80 chunk.
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		Amplitude:  20,
		Baseline:   96,
		CaveBand:   0.035,
		SolidBlock: BlockTypeSolid,
		Caves:      true,
	}
}

// Generator fills a grid from a height field and an independent cave field.
type Generator struct {
	height   NoiseSource
	cave     NoiseSource
	settings GeneratorSettings
}

// NewGenerator creates a generator over two noise fields.
func NewGenerator(height, cave NoiseSource, settings GeneratorSettings) *Generator {
	if settings.SolidBlock == BlockTypeAir {
		settings.SolidBlock = BlockTypeSolid
	}
	return &Generator{
		height:   height,
		cave:     cave,
		settings: settings,
	}
}

// SurfaceHeight computes the top solid y of column (x,z), truncated toward
// zero and clamped to [0, gridHeight-1].
func (g *Generator) SurfaceHeight(x, z, gridHeight int) int {
	v := g.height.Noise2D(float64(x), float64(z))*g.settings.Amplitude + g.settings.Baseline
	h := int(v)
	if h < 0 {
		return 0
	}
	if h > gridHeight-1 {
		return gridHeight - 1
	}
	return h
}

// IsCave reports whether the cave field falls strictly inside the carve band.
func (g *Generator) IsCave(x, y, z int) bool {
	if !g.settings.Caves {
		return false
	}
	v := g.cave.Noise3D(float64(x), float64(y), float64(z))
	return v > -g.settings.CaveBand && v < g.settings.CaveBand
}

// Populate assigns every cell of the grid in a single pass.
func (g *Generator) Populate(grid *Grid) {
	w, h, d := grid.Dims()
	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			surface := g.SurfaceHeight(x, z, h)
			for y := 0; y < h; y++ {
				if y <= surface && !g.IsCave(x, y, z) {
					grid.Set(x, y, z, g.settings.SolidBlock)
				} else {
					grid.Set(x, y, z, BlockTypeAir)
				}
			}
		}
	}
}
