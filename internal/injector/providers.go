package injector

import (
	"go.uber.org/zap"

	"github.com/yechan-k/rollball/internal/application/session"
	"github.com/yechan-k/rollball/internal/application/system"
	"github.com/yechan-k/rollball/internal/domain/entity"
	"github.com/yechan-k/rollball/internal/infrastructure/config"
)

// Params carries the non-provider inputs of a session build: which world to
// load and which input source drives it.
type Params struct {
	World  string
	Source session.InputSource
}

// ProvideConfig loads physics plus the selected world configuration.
func ProvideConfig(loader *config.Loader, params Params) (*config.SimConfig, error) {
	return loader.LoadAll(params.World)
}

// ProvideWorld builds the immutable world aggregate from configuration.
func ProvideWorld(cfg *config.SimConfig, logger *zap.Logger) (*entity.World, error) {
	return system.BuildWorld(cfg.World, logger)
}

// ProvideBody spawns the ball at the world's spawn position.
func ProvideBody(cfg *config.SimConfig, world *entity.World) (*entity.RigidBody, error) {
	return entity.NewRigidBody(world.Spawn, cfg.Physics.Body.Mass, cfg.Physics.Body.Radius)
}

// ProvideResolver creates the surface resolver over the world geometry.
func ProvideResolver(cfg *config.SimConfig, world *entity.World) *system.SurfaceResolver {
	return system.NewSurfaceResolver(world, cfg.Physics)
}

// ProvidePhysics creates the physics system.
func ProvidePhysics(cfg *config.SimConfig, resolver *system.SurfaceResolver) *system.PhysicsSystem {
	return system.NewPhysicsSystem(cfg.Physics, resolver)
}

// ProvideSession assembles the session from its parts.
func ProvideSession(world *entity.World, body *entity.RigidBody, physics *system.PhysicsSystem, params Params) *session.Session {
	return session.NewSession(world, body, physics, params.Source)
}
