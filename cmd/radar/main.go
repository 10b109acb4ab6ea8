package main

import (
	"context"
	"log/slog"
	"os"

	"pokeradar/config"
	"pokeradar/internal/delivery"
	"pokeradar/internal/delivery/http"
	"pokeradar/internal/delivery/http/middleware"
	"pokeradar/internal/delivery/http/router/handler"
	"pokeradar/internal/delivery/scheduler"
	"pokeradar/internal/infra/dispatch"
	logs "pokeradar/internal/infra/log"
	"pokeradar/internal/infra/persistence/postgres"
	"pokeradar/internal/infra/pubsub"
	"pokeradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPositionRepository,
			postgres.NewSpeciesRepository,
			postgres.NewFilterRepository,
			postgres.NewSpawnRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			dispatch.NewDispatcher,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIngestService,
			impl.NewAccountService,
			impl.NewSubscriptionService,
			impl.NewCatalogService,
			impl.NewSweepService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIngestHandler,
			handler.NewUserHandler,
			handler.NewSubscriptionHandler,
			handler.NewSpeciesHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
