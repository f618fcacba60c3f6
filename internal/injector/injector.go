//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/yechan-k/rollball/internal/application/session"
	"github.com/yechan-k/rollball/internal/infrastructure/config"
)

// InitializeSession assembles a ready-to-run session from the config loader,
// the process logger, and the run parameters.
func InitializeSession(loader *config.Loader, logger *zap.Logger, params Params) (*session.Session, error) {
	wire.Build(
		ProvideConfig,
		ProvideWorld,
		ProvideBody,
		ProvideResolver,
		ProvidePhysics,
		ProvideSession,
	)
	return nil, nil
}
