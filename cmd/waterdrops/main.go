package main

import (
	"context"
	"log/slog"
	"os"

	"waterdrops/config"
	"waterdrops/internal/delivery"
	"waterdrops/internal/delivery/api"
	"waterdrops/internal/delivery/api/middleware"
	"waterdrops/internal/delivery/api/router/handler"
	"waterdrops/internal/domain/repository"
	logs "waterdrops/internal/infra/log"
	"waterdrops/internal/infra/persistence/mongodb"
	"waterdrops/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		injectInfra(),
		injectRepo(),
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
		fx.Annotate(
			mongodb.New,
			fx.As(fx.Self()),
			fx.As(new(repository.HealthChecker)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewProductRepository,
			mongodb.NewReviewRepository,
			mongodb.NewOrderRepository,
			mongodb.NewUserRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewReviewService,
			impl.NewOrderService,
			impl.NewUserService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAdminMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
