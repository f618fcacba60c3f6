package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/yechan-k/rollball/internal/domain/entity"
	"github.com/yechan-k/rollball/internal/infrastructure/config"
)

// BuildWorld converts a WorldConfig into the immutable world aggregate:
// generated terrain, the obstacle set, and the spawn position. Obstacle
// entries with an unknown type are skipped with a warning, never a fatal
// error; malformed geometry on a known type is.
func BuildWorld(cfg *config.WorldConfig, logger *zap.Logger) (*entity.World, error) {
	terrain, err := entity.GenerateHeightField(entity.TerrainParams{
		StartX:     cfg.Terrain.StartX,
		Width:      cfg.Terrain.Width,
		Samples:    cfg.Terrain.Samples,
		BaseHeight: cfg.Terrain.BaseHeight,
		Amplitude1: cfg.Terrain.Amplitude1,
		Frequency1: cfg.Terrain.Frequency1,
		Amplitude2: cfg.Terrain.Amplitude2,
		Frequency2: cfg.Terrain.Frequency2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate terrain: %w", err)
	}

	obstacles := make([]entity.Obstacle, 0, len(cfg.Obstacles))
	for _, oc := range cfg.Obstacles {
		typ, err := entity.ParseObstacleType(oc.Type)
		if err != nil {
			logger.Warn("skipping obstacle with unknown type",
				zap.String("id", oc.ID),
				zap.String("type", oc.Type))
			continue
		}

		obstacle, err := entity.NewObstacle(oc.ID, typ, mgl64.Vec2{oc.X, oc.Y}, oc.Width, oc.Height)
		if err != nil {
			return nil, fmt.Errorf("failed to build obstacle %s: %w", oc.ID, err)
		}
		obstacles = append(obstacles, obstacle)
	}

	return &entity.World{
		Terrain:   terrain,
		Obstacles: obstacles,
		Spawn:     mgl64.Vec2{cfg.Spawn.X, cfg.Spawn.Y},
	}, nil
}
