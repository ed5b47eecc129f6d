package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"beautymap/config"
	logs "beautymap/internal/infra/log"
	"beautymap/internal/infra/persistence/postgres"
	"beautymap/internal/infra/qrcode"
	"beautymap/internal/usecase/impl"

	"go.uber.org/fx"
)

const seedTimeout = 2 * time.Minute

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			qrcode.NewFromConfig,
			withoutEvents,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewReviewService,
			newSeeder,
		),
		fx.Invoke(registerSeed),
	)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// withoutEvents keeps seeding from notifying or publishing anything.
func withoutEvents() *impl.EventDispatcher {
	return nil
}

type seedParams struct {
	fx.In

	Lc     fx.Lifecycle
	Seeder *seeder
}

func registerSeed(params seedParams) {
	params.Lc.Append(fx.Hook{
		OnStart: params.Seeder.run,
	})
}
