package main

import (
	"context"
	"log/slog"
	"os"

	"locinsight/config"
	"locinsight/internal/delivery"
	"locinsight/internal/delivery/api"
	"locinsight/internal/delivery/api/middleware"
	"locinsight/internal/delivery/api/router/handler"
	"locinsight/internal/infra/auth"
	"locinsight/internal/infra/geocode"
	logs "locinsight/internal/infra/log"
	"locinsight/internal/infra/persistence/postgres"
	"locinsight/internal/usecase/impl"

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
		postgres.NewReportDB,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewStatisticRepository,
			postgres.NewStoreRepository,
			postgres.NewContentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewVWorldGeocoder,
			auth.NewJWTValidator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewStatisticService,
			impl.NewStoreService,
			impl.NewContentService,
			impl.NewCMSService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewStatisticHandler,
			handler.NewStoreHandler,
			handler.NewContentHandler,
			handler.NewCMSHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
