package dispatch

import (
	"context"
	"log/slog"

	"pokeradar/config"
	"pokeradar/internal/domain/constants"
	"pokeradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDispatcher creates a Dispatcher based on configuration
func NewDispatcher(params DispatcherParams) (service.Dispatcher, error) {
	cfg := params.Config.Dispatch
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.DispatchProviderLog {
		logger.Info("Using log dispatcher for spawn alerts")

		return NewLogDispatcher(logger), nil
	}

	switch cfg.Provider {
	case constants.DispatchProviderFirebase:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials path is required for firebase provider")
		}
		logger.Info("Using Firebase dispatcher for spawn alerts",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return NewFirebaseDispatcher(params.Ctx, cfg.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown dispatch provider: %s", cfg.Provider)
	}
}
