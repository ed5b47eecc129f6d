package main

import (
	"context"
	"log/slog"
	"os"

	"beautymap/config"
	"beautymap/internal/delivery"
	"beautymap/internal/delivery/http"
	"beautymap/internal/delivery/http/middleware"
	"beautymap/internal/delivery/http/router/handler"
	"beautymap/internal/infra/auth"
	"beautymap/internal/infra/counter"
	"beautymap/internal/infra/geocoding"
	logs "beautymap/internal/infra/log"
	"beautymap/internal/infra/notification"
	"beautymap/internal/infra/persistence/postgres"
	"beautymap/internal/infra/pubsub"
	"beautymap/internal/infra/qrcode"
	"beautymap/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPageVisitRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewClerkVerifier,
			geocoding.NewNominatimGeocoder,
			notification.NewPushService,
			qrcode.NewFromConfig,
			counter.NewVisitCounter,
			impl.NewEventDispatcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewReviewService,
			impl.NewMessageService,
			impl.NewNotificationService,
			impl.NewDirectoryService,
			impl.NewAdminService,
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
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewReviewHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
			handler.NewDirectoryHandler,
			handler.NewAdminHandler,
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
