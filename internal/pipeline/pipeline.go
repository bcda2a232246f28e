// Package pipeline runs chunk generation, meshing and collision building in sequence.
package pipeline

import (
	"context"
	"fmt"

	"chunkmesh/internal/config"
	"chunkmesh/internal/meshing"
	"chunkmesh/internal/physics"
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/world"

	"go.uber.org/zap"
)

// Output is everything one run produces.
type Output struct {
	Grid   *world.Grid
	Mesh   meshing.Result
	Body   *physics.StaticBody // nil when the chunk has no visible faces
	Solids int
}

// NewGenerator builds the terrain generator described by cfg.
func NewGenerator(cfg *config.Config) (*world.Generator, error) {
	height, err := world.NewNoiseSource(cfg.Terrain.Noise, cfg.Terrain.Seed, cfg.Terrain.Frequency)
	if err != nil {
		return nil, fmt.Errorf("terrain noise: %w", err)
	}
	cave, err := world.NewNoiseSource(cfg.Caves.Noise, cfg.Caves.Seed, cfg.Caves.Frequency)
	if err != nil {
		return nil, fmt.Errorf("cave noise: %w", err)
	}
	return world.NewGenerator(height, cave, world.GeneratorSettings{
		Amplitude:  cfg.Terrain.Amplitude,
		Baseline:   cfg.Terrain.Baseline,
		CaveBand:   cfg.Caves.Band,
		SolidBlock: world.BlockType(cfg.Blocks.Solid),
		Caves:      cfg.Caves.Enabled,
	}), nil
}

// Run generates one chunk, meshes it and wraps the collision soup in a static
// body. ctx is checked between stages only. Stage timings are reset per run.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Output, error) {
	if log == nil {
		log = zap.NewNop()
	}

	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	profiling.Reset()
	grid := world.NewGrid(cfg.World.Width, cfg.World.Height, cfg.World.Depth)
	stop := profiling.Track("world.Populate")
	gen.Populate(grid)
	stop()

	out := &Output{Grid: grid, Solids: grid.CountSolid()}
	log.Debug("chunk populated",
		zap.Int("width", cfg.World.Width),
		zap.Int("height", cfg.World.Height),
		zap.Int("depth", cfg.World.Depth),
		zap.Int("solids", out.Solids),
		zap.Bool("caves", cfg.Caves.Enabled),
	)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("after generation: %w", err)
	}

	out.Mesh = meshing.Build(grid, meshing.NewAtlas(cfg.Atlas.GridSize))
	log.Debug("chunk meshed",
		zap.Int("faces", out.Mesh.Faces),
		zap.Int("triangles", out.Mesh.Render.TriangleCount()),
		zap.Ints("faces_by_dir", out.Mesh.FaceCounts[:]),
	)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("after meshing: %w", err)
	}

	stop = profiling.Track("physics.NewStaticBody")
	out.Body = physics.NewStaticBody(out.Mesh.Collision.Positions)
	stop()
	if out.Body == nil {
		log.Warn("chunk has no visible faces, collision body skipped")
	}

	log.Info("chunk built",
		append([]zap.Field{
			zap.Int("solids", out.Solids),
			zap.Int("faces", out.Mesh.Faces),
			zap.Int("collision_triangles", out.Mesh.Collision.TriangleCount()),
		}, profiling.Fields()...)...,
	)
	return out, nil
}
