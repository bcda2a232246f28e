// Package main is the entry point for the chunkmesh generator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"chunkmesh/internal/config"
	"chunkmesh/internal/export"
	"chunkmesh/internal/logger"
	"chunkmesh/internal/pipeline"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Log.Error("chunk generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	out, err := pipeline.Run(ctx, cfg, logger.Named("pipeline"))
	if err != nil {
		return err
	}

	logger.Log.Info("Voxel chunk generated with collisions.",
		zap.Int("faces", out.Mesh.Faces),
		zap.Int("vertices", len(out.Mesh.Render.Vertices)),
	)

	// Drop a probe ray down the chunk centre to report the ground height.
	if out.Body != nil {
		cx := float32(cfg.World.Width) / 2
		cz := float32(cfg.World.Depth) / 2
		origin := mgl32.Vec3{cx + 0.5, float32(cfg.World.Height) + 1, cz + 0.5}
		hit := out.Body.Raycast(origin, mgl32.Vec3{0, -1, 0}, float32(cfg.World.Height)+2)
		if hit.Hit {
			logger.Log.Debug("ground probe", zap.Float32("y", hit.Point.Y()))
		}
	}

	return writeOutputs(cfg, out)
}

func writeOutputs(cfg *config.Config, out *pipeline.Output) error {
	log := logger.Named("export")

	if cfg.Output.OBJ != "" {
		f, err := os.Create(cfg.Output.OBJ)
		if err != nil {
			return fmt.Errorf("create obj: %w", err)
		}
		if err := export.WriteOBJ(f, &out.Mesh.Render); err != nil {
			f.Close()
			return fmt.Errorf("write obj: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("wrote mesh", zap.String("path", cfg.Output.OBJ))
	}

	if cfg.Output.Snapshot != "" {
		if err := export.WriteSnapshot(cfg.Output.Snapshot, out.Grid); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		log.Info("wrote snapshot", zap.String("path", cfg.Output.Snapshot))
	}

	if cfg.Output.Preview != "" {
		if err := export.WriteHeightmapPreview(cfg.Output.Preview, out.Grid, cfg.Output.PreviewScale); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		log.Info("wrote preview", zap.String("path", cfg.Output.Preview))
	}
	return nil
}
