package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautymap/internal/domain/entity"
	domainerrors "beautymap/internal/domain/errors"
	"beautymap/internal/domain/repository"
)

func TestProfileRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	profile := &entity.Profile{
		ExternalID:   "user_abc",
		Username:     "sarah_beauty",
		Role:         entity.RoleProvider,
		Bio:          "Lash artist",
		LocationType: ptr(entity.LocationTypeStudio),
		Latitude:     ptr(-33.8915),
		Longitude:    ptr(151.2767),
		Rating:       4.5,
		ReviewCount:  10,
	}
	require.NoError(t, repo.Create(ctx, profile))
	require.NotZero(t, profile.ID)
	assert.Zero(t, profile.Rating, "rating cannot be seeded on create")

	byID, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "sarah_beauty", byID.Username)
	assert.Equal(t, entity.LocationTypeStudio, *byID.LocationType)
	assert.Zero(t, byID.ReviewCount)

	byExternal, err := repo.FindByExternalID(ctx, "user_abc")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byExternal.ID)

	_, err = repo.FindByUsername(ctx, "SARAH_BEAUTY")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_UsernameUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	seedProfile(t, db, "taken", entity.RoleClient)

	exists, err := repo.ExistsByUsername(ctx, "taken")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "Taken")
	require.NoError(t, err)
	assert.False(t, exists, "username check is case-sensitive")

	err = repo.Create(ctx, &entity.Profile{ExternalID: "other", Username: "taken", Role: entity.RoleClient})
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)

	other := seedProfile(t, db, "other", entity.RoleClient)
	err = repo.UpdateUsername(ctx, other.ID, "taken", time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileRepository_UpdateLeavesProtectedFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, db, "jessica_c", entity.RoleClient)
	require.NoError(t, repo.UpdateRating(ctx, profile.ID, 3.5, 2))

	profile.Bio = "Updated"
	profile.Username = "hijack"
	profile.ExternalID = "hijack"
	profile.Rating = 5
	profile.ReviewCount = 99
	require.NoError(t, repo.Update(ctx, profile))

	got, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Bio)
	assert.Equal(t, "jessica_c", got.Username)
	assert.Equal(t, "user_jessica_c", got.ExternalID)
	assert.Equal(t, 3.5, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)
}

func TestProfileRepository_Counts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	studio := seedProfile(t, db, "a", entity.RoleProvider)
	studio.LocationType = ptr(entity.LocationTypeStudio)
	require.NoError(t, repo.Update(ctx, studio))
	mobile := seedProfile(t, db, "b", entity.RoleProvider)
	mobile.LocationType = ptr(entity.LocationTypeMobile)
	require.NoError(t, repo.Update(ctx, mobile))
	seedProfile(t, db, "c", entity.RoleProvider)
	seedProfile(t, db, "d", entity.RoleClient)

	byRole, err := repo.CountByRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), byRole[entity.RoleProvider])
	assert.Equal(t, int64(1), byRole[entity.RoleClient])

	byType, err := repo.CountProvidersByLocationType(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.LocationTypeCount{
		{LocationType: entity.LocationTypeMobile, Count: 1},
		{LocationType: entity.LocationTypeStudio, Count: 1},
	}, byType)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "d", all[0].Username, "newest first")

	providers, err := repo.ListByRole(ctx, entity.RoleProvider)
	require.NoError(t, err)
	assert.Len(t, providers, 3)
}

func TestProfileRepository_FindByIDForUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	profile := seedProfile(t, db, "locked", entity.RoleProvider)

	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		got, err := f.ProfileRepo().FindByIDForUpdate(ctx, profile.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, profile.ID, got.ID)

		return nil
	})
	require.NoError(t, err)
}
