package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"beautymap/internal/domain/entity"
)

// newTestDB opens a migrated in-memory SQLite database. A single connection
// keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func ptr[T any](v T) *T { return &v }

func seedProfile(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ExternalID: "user_" + username,
		Username:   username,
		Role:       role,
	}
	require.NoError(t, NewProfileRepository(db).Create(context.Background(), profile))

	return profile
}
