package main

import (
	"context"
	"log/slog"
	"os"

	"dailyfresh/config"
	"dailyfresh/internal/delivery"
	"dailyfresh/internal/delivery/http"
	"dailyfresh/internal/delivery/http/middleware"
	"dailyfresh/internal/delivery/http/router/handler"
	"dailyfresh/internal/infra/auth"
	"dailyfresh/internal/infra/ephemeral/redis"
	logs "dailyfresh/internal/infra/log"
	"dailyfresh/internal/infra/persistence/postgres"
	"dailyfresh/internal/infra/pubsub"
	"dailyfresh/internal/infra/qrcode"
	"dailyfresh/internal/usecase/impl"

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
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAddressRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewGoodsRepository,
			postgres.NewTransactionManager,
			redis.NewCartRepository,
			redis.NewHistoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewActivationCodec,
			qrcode.NewQRCodeService,
			pubsub.NewMailDispatcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAddressService,
			impl.NewGoodsService,
			impl.NewCartService,
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
			handler.NewUserHandler,
			handler.NewAddressHandler,
			handler.NewGoodsHandler,
			handler.NewCartHandler,
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
