package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/delivery"
	"github.com/BeMaTech82/hortago/internal/delivery/gateway"
	"github.com/BeMaTech82/hortago/internal/delivery/gateway/handler"
	"github.com/BeMaTech82/hortago/internal/infra/cache"
	logs "github.com/BeMaTech82/hortago/internal/infra/log"
	"github.com/BeMaTech82/hortago/internal/infra/persistence/postgres"
	"github.com/BeMaTech82/hortago/internal/infra/pubsub"
	"github.com/BeMaTech82/hortago/internal/infra/upstream"
	"github.com/BeMaTech82/hortago/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			upstream.NewClient,
		),
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTaskQueueRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewGatewayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGatewayHandler,
			handler.NewSyncHandler,
			gateway.NewConnectivityProbe,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				gateway.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
