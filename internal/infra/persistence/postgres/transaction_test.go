package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/internal/domain/entity"
	"beautymap/internal/domain/repository"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.ProfileRepo().Create(ctx, &entity.Profile{ExternalID: "x", Username: "x", Role: entity.RoleClient}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewProfileRepository(db).FindByUsername(ctx, "x")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.ProfileRepo().Create(ctx, &entity.Profile{ExternalID: "y", Username: "y", Role: entity.RoleClient})
	})
	require.NoError(t, err)

	_, err = NewProfileRepository(db).FindByUsername(ctx, "y")
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.ProfileRepo().Create(ctx, &entity.Profile{ExternalID: "z", Username: "z", Role: entity.RoleClient})
			panic("boom")
		})
	})

	_, err := NewProfileRepository(db).FindByUsername(ctx, "z")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
