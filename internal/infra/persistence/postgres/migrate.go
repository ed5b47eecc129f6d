package postgres

import (
	"context"

	"beautymap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// expressionIndexes holds the indexes GORM struct tags cannot express.
var expressionIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_services_provider_lower_name ON services (provider_id, LOWER(name))",
	"CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at)",
}

// Migrate creates or updates the schema for every model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	for _, stmt := range expressionIndexes {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to create index: %s", stmt)
		}
	}

	return nil
}
