package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"beautymap/config"
	logs "beautymap/internal/infra/log"
	"beautymap/internal/infra/persistence/postgres"
	"beautymap/internal/util"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const migrateTimeout = 5 * time.Minute

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	)

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

func registerMigration(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			start := time.Now()
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Schema migrated", slog.String("took", util.FormatDuration(time.Since(start))))

			return nil
		},
	})
}
